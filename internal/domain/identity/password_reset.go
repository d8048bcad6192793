package identity

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// resetTokenTTL is how long a password reset token stays valid.
const resetTokenTTL = 2 * time.Hour

// PasswordResetToken is a single-use credential for resetting a user's
// password. Only the SHA-256 digest of the token is persisted.
type PasswordResetToken struct {
	shared.TenantEntity
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	TokenHash string     `gorm:"size:64;not null;uniqueIndex"`
	ExpiresAt time.Time  `gorm:"not null"`
	UsedAt    *time.Time `gorm:""`
}

// TableName returns the database table name
func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

// NewPasswordResetToken creates a token for the given user and returns the
// plaintext value exactly once, for delivery to the user.
func NewPasswordResetToken(tenantID, userID uuid.UUID) (*PasswordResetToken, string, error) {
	if tenantID == uuid.Nil {
		return nil, "", shared.ErrTenantRequired
	}
	if userID == uuid.Nil {
		return nil, "", shared.NewValidationError("user id is required")
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, "", err
	}
	plaintext := hex.EncodeToString(raw)

	return &PasswordResetToken{
		TenantEntity: shared.NewTenantEntity(tenantID),
		UserID:       userID,
		TokenHash:    HashResetToken(plaintext),
		ExpiresAt:    time.Now().Add(resetTokenTTL),
	}, plaintext, nil
}

// HashResetToken returns the hex SHA-256 digest used for token lookup
func HashResetToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// IsUsable reports whether the token can still redeem a reset
func (t *PasswordResetToken) IsUsable() bool {
	return t.UsedAt == nil && time.Now().Before(t.ExpiresAt)
}
