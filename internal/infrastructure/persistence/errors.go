package persistence

import (
	"errors"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"gorm.io/gorm"
)

// translateError maps store-level failures onto the domain error taxonomy.
// Record-not-found and tenant-mismatch arrive here identically (both are
// simply "no row matched"), which keeps the two causes indistinguishable
// to callers.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.ErrForeignKey
	default:
		return shared.NewStorageError(err)
	}
}

// isDuplicateKey reports whether the error is a uniqueness violation,
// used by the document-number generators to retry on conflict.
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, shared.ErrDuplicateKey)
}
