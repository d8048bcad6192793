package identity

import (
	"strings"
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Organization groups users within a tenant, e.g. a branch or department.
type Organization struct {
	shared.TenantEntity
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"size:1024"`
}

// TableName returns the database table name
func (Organization) TableName() string {
	return "organizations"
}

// NewOrganization creates a new organization within a tenant
func NewOrganization(tenantID uuid.UUID, name string) (*Organization, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrTenantRequired
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("organization name is required")
	}
	return &Organization{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
	}, nil
}

// UserOrganization links a user to an organization with a role.
type UserOrganization struct {
	shared.TenantEntity
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Role           UserRole  `gorm:"size:20;not null;default:staff"`
}

// TableName returns the database table name
func (UserOrganization) TableName() string {
	return "user_organizations"
}

// UserInvitation is a pending invite for an email address to join a tenant.
type UserInvitation struct {
	shared.TenantEntity
	Email      string     `gorm:"size:255;not null;index"`
	Token      string     `gorm:"size:128;not null;uniqueIndex"`
	Role       UserRole   `gorm:"size:20;not null;default:staff"`
	ExpiresAt  time.Time  `gorm:"not null"`
	AcceptedAt *time.Time `gorm:""`
}

// TableName returns the database table name
func (UserInvitation) TableName() string {
	return "user_invitations"
}

// IsExpired reports whether the invitation is past its expiry
func (i *UserInvitation) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}

// IsAccepted reports whether the invitation has been redeemed
func (i *UserInvitation) IsAccepted() bool {
	return i.AcceptedAt != nil
}
