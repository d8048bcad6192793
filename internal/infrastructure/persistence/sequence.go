package persistence

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document number prefixes for human-facing identifiers.
const (
	quoteNumberPrefix         = "QT"
	invoiceNumberPrefix       = "INV"
	purchaseOrderNumberPrefix = "PO"
)

// numberInsertAttempts bounds the retry loop for generate-and-insert.
// "Read max, then insert" is racy; the unique index on (tenant_id,
// number) is the arbiter and a losing writer simply regenerates.
const numberInsertAttempts = 3

// nextDocumentNumber produces {PREFIX}-{TENANT8}-{YEAR}-{SEQ:04d}, where
// SEQ is one greater than the highest existing sequence for the same
// tenant and year, starting at 1. TENANT8 is the first 8 hex characters
// of the tenant UUID.
func nextDocumentNumber(db *gorm.DB, model any, column, prefix string, tenantID uuid.UUID, now time.Time) (string, error) {
	numberPrefix := fmt.Sprintf("%s-%s-%d-", prefix, tenantShort(tenantID), now.Year())

	var maxNumber string
	err := db.Model(model).
		Select(column).
		Where("tenant_id = ? AND "+column+" LIKE ?", tenantID, numberPrefix+"%").
		Order(column + " DESC").
		Limit(1).
		Pluck(column, &maxNumber).Error
	if err != nil {
		return "", translateError(err)
	}

	seq := 1
	if maxNumber != "" {
		if n, ok := parseSequence(maxNumber); ok {
			seq = n + 1
		}
	}

	return fmt.Sprintf("%s%04d", numberPrefix, seq), nil
}

// parseSequence extracts the trailing zero-padded sequence from a
// document number
func parseSequence(number string) (int, bool) {
	idx := strings.LastIndex(number, "-")
	if idx < 0 || idx == len(number)-1 {
		return 0, false
	}
	var seq int
	if _, err := fmt.Sscanf(number[idx+1:], "%04d", &seq); err != nil {
		return 0, false
	}
	return seq, true
}

// tenantShort returns the first 8 hex characters of the tenant UUID
func tenantShort(tenantID uuid.UUID) string {
	return tenantID.String()[:8]
}

// createWithGeneratedNumber runs generate-then-insert, retrying when the
// insert loses a race on the number's unique index. assign receives the
// fresh number and must store it on the row before insert runs.
func createWithGeneratedNumber(generate func() (string, error), assign func(number string), insert func() error) error {
	var err error
	for attempt := 0; attempt < numberInsertAttempts; attempt++ {
		var number string
		if number, err = generate(); err != nil {
			return err
		}
		assign(number)
		if err = insert(); err == nil {
			return nil
		}
		if !isDuplicateKey(err) {
			return translateError(err)
		}
	}
	return translateError(err)
}
