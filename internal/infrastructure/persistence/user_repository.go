package persistence

import (
	"context"
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/identity"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	entityStore[identity.User]
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{entityStore[identity.User]{db: db}}
}

// FindByID finds a user by ID through the tenant filter
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*identity.User, error) {
	return r.findByID(ctx, id, filter)
}

// FindAll lists users visible through the tenant filter
func (r *GormUserRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]identity.User, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of users ordered by a whitelisted column
func (r *GormUserRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[identity.User], error) {
	return r.findPage(ctx, query, filter, UserSortFields)
}

// FindByUsername finds a user by username, the natural key within a tenant
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string, filter shared.TenantFilter) (*identity.User, error) {
	return r.firstWhere(ctx, filter, "username = ?", strings.ToLower(strings.TrimSpace(username)))
}

// FindByEmail lists users with the given email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string, filter shared.TenantFilter) ([]identity.User, error) {
	return r.findWhere(ctx, filter, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

// Create inserts a new user; a tenant is mandatory
func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	if user.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, user)
}

// Update merge-patches the named fields of a user
func (r *GormUserRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*identity.User, error) {
	return r.update(ctx, id, patch, filter)
}

// Delete hard-deletes a user through the tenant filter
func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

// Count counts users visible through the tenant filter
func (r *GormUserRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormUserRepository implements UserRepository
var _ identity.UserRepository = (*GormUserRepository)(nil)
