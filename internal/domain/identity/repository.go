package identity

import (
	"context"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// TenantRepository persists tenants. Tenants are the partition roots and
// are never themselves tenant-filtered.
type TenantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	FindByCode(ctx context.Context, code string) (*Tenant, error)
	FindAll(ctx context.Context) ([]Tenant, error)
	Create(ctx context.Context, tenant *Tenant) error
	Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*Tenant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository persists users
type UserRepository interface {
	shared.Repository[User]
	FindByUsername(ctx context.Context, username string, filter shared.TenantFilter) (*User, error)
	FindByEmail(ctx context.Context, email string, filter shared.TenantFilter) ([]User, error)
}

// EmployeeRepository persists employees
type EmployeeRepository interface {
	shared.Repository[Employee]
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.TenantFilter) (*Employee, error)
	FindActive(ctx context.Context, filter shared.TenantFilter) ([]Employee, error)
}

// OrganizationRepository persists organizations and user-organization links
type OrganizationRepository interface {
	shared.Repository[Organization]
	FindMembers(ctx context.Context, organizationID uuid.UUID, filter shared.TenantFilter) ([]UserOrganization, error)
	AddMember(ctx context.Context, link *UserOrganization) error
	RemoveMember(ctx context.Context, organizationID, userID uuid.UUID, filter shared.TenantFilter) error
}

// UserInvitationRepository persists pending invitations
type UserInvitationRepository interface {
	shared.Repository[UserInvitation]
	FindByToken(ctx context.Context, token string) (*UserInvitation, error)
	FindPendingByEmail(ctx context.Context, email string, filter shared.TenantFilter) ([]UserInvitation, error)
}

// PasswordResetTokenRepository persists password reset tokens
type PasswordResetTokenRepository interface {
	Create(ctx context.Context, token *PasswordResetToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*PasswordResetToken, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}
