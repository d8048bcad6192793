package persistence

import (
	"context"
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/identity"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrganizationRepository implements OrganizationRepository using GORM
type GormOrganizationRepository struct {
	entityStore[identity.Organization]
	links entityStore[identity.UserOrganization]
}

// NewGormOrganizationRepository creates a new GormOrganizationRepository
func NewGormOrganizationRepository(db *gorm.DB) *GormOrganizationRepository {
	return &GormOrganizationRepository{
		entityStore: entityStore[identity.Organization]{db: db},
		links:       entityStore[identity.UserOrganization]{db: db},
	}
}

// FindByID finds an organization by ID through the tenant filter
func (r *GormOrganizationRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*identity.Organization, error) {
	return r.findByID(ctx, id, filter)
}

// FindAll lists organizations visible through the tenant filter
func (r *GormOrganizationRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]identity.Organization, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of organizations ordered by a whitelisted column
func (r *GormOrganizationRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[identity.Organization], error) {
	return r.findPage(ctx, query, filter, CommonSortFields)
}

// FindMembers lists the user-organization links for an organization
func (r *GormOrganizationRepository) FindMembers(ctx context.Context, organizationID uuid.UUID, filter shared.TenantFilter) ([]identity.UserOrganization, error) {
	return r.links.findWhere(ctx, filter, "organization_id = ?", organizationID)
}

// AddMember links a user to an organization
func (r *GormOrganizationRepository) AddMember(ctx context.Context, link *identity.UserOrganization) error {
	if link.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	if link.ID == uuid.Nil {
		link.TenantEntity = shared.TenantEntity{
			BaseEntity: shared.NewBaseEntity(),
			TenantID:   link.TenantID,
		}
	}
	return r.links.create(ctx, link)
}

// RemoveMember unlinks a user from an organization
func (r *GormOrganizationRepository) RemoveMember(ctx context.Context, organizationID, userID uuid.UUID, filter shared.TenantFilter) error {
	return r.links.deleteWhere(ctx, filter, "organization_id = ? AND user_id = ?", organizationID, userID)
}

// Create inserts a new organization; a tenant is mandatory
func (r *GormOrganizationRepository) Create(ctx context.Context, organization *identity.Organization) error {
	if organization.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, organization)
}

// Update merge-patches the named fields of an organization
func (r *GormOrganizationRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*identity.Organization, error) {
	return r.update(ctx, id, patch, filter)
}

// Delete hard-deletes an organization and its membership links
func (r *GormOrganizationRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	if err := r.links.deleteWhere(ctx, filter, "organization_id = ?", id); err != nil {
		return err
	}
	return r.deleteByID(ctx, id, filter)
}

// Count counts organizations visible through the tenant filter
func (r *GormOrganizationRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormOrganizationRepository implements OrganizationRepository
var _ identity.OrganizationRepository = (*GormOrganizationRepository)(nil)

// GormUserInvitationRepository implements UserInvitationRepository using GORM
type GormUserInvitationRepository struct {
	entityStore[identity.UserInvitation]
}

// NewGormUserInvitationRepository creates a new GormUserInvitationRepository
func NewGormUserInvitationRepository(db *gorm.DB) *GormUserInvitationRepository {
	return &GormUserInvitationRepository{entityStore[identity.UserInvitation]{db: db}}
}

// FindByID finds an invitation by ID through the tenant filter
func (r *GormUserInvitationRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*identity.UserInvitation, error) {
	return r.findByID(ctx, id, filter)
}

// FindAll lists invitations visible through the tenant filter
func (r *GormUserInvitationRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]identity.UserInvitation, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of invitations ordered by a whitelisted column
func (r *GormUserInvitationRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[identity.UserInvitation], error) {
	return r.findPage(ctx, query, filter, CommonSortFields)
}

// FindByToken finds an invitation by its opaque token. Token lookup is
// how an invitee redeems the invite, so it is deliberately unscoped.
func (r *GormUserInvitationRepository) FindByToken(ctx context.Context, token string) (*identity.UserInvitation, error) {
	return r.firstWhere(ctx, shared.Unscoped(), "token = ?", token)
}

// FindPendingByEmail lists unredeemed invitations for an email address
func (r *GormUserInvitationRepository) FindPendingByEmail(ctx context.Context, email string, filter shared.TenantFilter) ([]identity.UserInvitation, error) {
	return r.findWhere(ctx, filter, "email = ? AND accepted_at IS NULL", strings.ToLower(strings.TrimSpace(email)))
}

// Create inserts a new invitation; a tenant is mandatory
func (r *GormUserInvitationRepository) Create(ctx context.Context, invitation *identity.UserInvitation) error {
	if invitation.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, invitation)
}

// Update merge-patches the named fields of an invitation
func (r *GormUserInvitationRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*identity.UserInvitation, error) {
	return r.update(ctx, id, patch, filter)
}

// Delete hard-deletes an invitation through the tenant filter
func (r *GormUserInvitationRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

// Count counts invitations visible through the tenant filter
func (r *GormUserInvitationRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormUserInvitationRepository implements UserInvitationRepository
var _ identity.UserInvitationRepository = (*GormUserInvitationRepository)(nil)
