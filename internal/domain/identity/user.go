package identity

import (
	"strings"
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserRole represents a user's role within its tenant
type UserRole string

const (
	// UserRoleAdmin can manage tenant configuration and users
	UserRoleAdmin UserRole = "admin"
	// UserRoleManager can manage business records
	UserRoleManager UserRole = "manager"
	// UserRoleStaff has day-to-day access
	UserRoleStaff UserRole = "staff"
)

// User is an authenticated account scoped to a tenant. The username is
// unique within the tenant, not globally, so TenantID is declared here
// rather than through the embedded helper to share the composite index.
type User struct {
	shared.BaseEntity
	TenantID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_users_tenant_username"`
	Username     string     `gorm:"size:64;not null;uniqueIndex:idx_users_tenant_username"`
	Email        string     `gorm:"size:255;not null"`
	FullName     string     `gorm:"size:255"`
	PasswordHash string     `gorm:"size:255;not null"`
	Role         UserRole   `gorm:"size:20;not null;default:staff"`
	Active       bool       `gorm:"not null;default:true"`
	LastLoginAt  *time.Time `gorm:""`
}

// TableName returns the database table name
func (User) TableName() string {
	return "users"
}

// GetTenantID returns the owning tenant ID
func (u *User) GetTenantID() uuid.UUID {
	return u.TenantID
}

// NewUser creates a new active user with a hashed password
func NewUser(tenantID uuid.UUID, username, email, password string) (*User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, shared.NewValidationError("username is required")
	}
	if tenantID == uuid.Nil {
		return nil, shared.ErrTenantRequired
	}
	u := &User{
		BaseEntity: shared.NewBaseEntity(),
		TenantID:   tenantID,
		Username:   username,
		Email:      strings.ToLower(strings.TrimSpace(email)),
		Role:       UserRoleStaff,
		Active:     true,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword hashes and stores the given plaintext password
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return shared.NewValidationError("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
