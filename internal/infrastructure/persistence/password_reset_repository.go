package persistence

import (
	"context"
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/identity"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPasswordResetTokenRepository implements PasswordResetTokenRepository
// using GORM
type GormPasswordResetTokenRepository struct {
	entityStore[identity.PasswordResetToken]
}

// NewGormPasswordResetTokenRepository creates a new GormPasswordResetTokenRepository
func NewGormPasswordResetTokenRepository(db *gorm.DB) *GormPasswordResetTokenRepository {
	return &GormPasswordResetTokenRepository{entityStore[identity.PasswordResetToken]{db: db}}
}

// Create inserts a new reset token; a tenant is mandatory
func (r *GormPasswordResetTokenRepository) Create(ctx context.Context, token *identity.PasswordResetToken) error {
	if token.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, token)
}

// FindByTokenHash looks up a token by its hash. Reset links arrive before
// the caller is authenticated, so the lookup is deliberately unscoped.
func (r *GormPasswordResetTokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*identity.PasswordResetToken, error) {
	return r.firstWhere(ctx, shared.Unscoped(), "token_hash = ?", tokenHash)
}

// MarkUsed stamps the token as consumed. A token that is already used or
// does not exist surfaces as ErrNotFound.
func (r *GormPasswordResetTokenRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&identity.PasswordResetToken{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", time.Now())
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteExpired removes tokens whose validity window has passed
func (r *GormPasswordResetTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&identity.PasswordResetToken{})
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}

// Ensure GormPasswordResetTokenRepository implements PasswordResetTokenRepository
var _ identity.PasswordResetTokenRepository = (*GormPasswordResetTokenRepository)(nil)
