package persistence

import (
	"context"
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/identity"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTenantRepository implements TenantRepository using GORM. Tenants
// are the partition roots, so none of these operations take a tenant
// filter.
type GormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a new GormTenantRepository
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// FindByID finds a tenant by its ID
func (r *GormTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Tenant, error) {
	var tenant identity.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

// FindByCode finds a tenant by its unique code
func (r *GormTenantRepository) FindByCode(ctx context.Context, code string) (*identity.Tenant, error) {
	var tenant identity.Tenant
	err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&tenant).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

// FindAll lists every tenant
func (r *GormTenantRepository) FindAll(ctx context.Context) ([]identity.Tenant, error) {
	var tenants []identity.Tenant
	if err := r.db.WithContext(ctx).Find(&tenants).Error; err != nil {
		return nil, translateError(err)
	}
	return tenants, nil
}

// Create inserts a new tenant
func (r *GormTenantRepository) Create(ctx context.Context, tenant *identity.Tenant) error {
	return translateError(r.db.WithContext(ctx).Create(tenant).Error)
}

// Update merge-patches the named fields of a tenant
func (r *GormTenantRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any) (*identity.Tenant, error) {
	sanitised := make(map[string]any, len(patch))
	for k, v := range patch {
		sanitised[k] = v
	}
	for _, col := range protectedColumns {
		delete(sanitised, col)
	}
	if len(sanitised) > 0 {
		result := r.db.WithContext(ctx).
			Model(&identity.Tenant{}).
			Where("id = ?", id).
			Updates(sanitised)
		if result.Error != nil {
			return nil, translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, shared.ErrNotFound
		}
	}
	return r.FindByID(ctx, id)
}

// Delete hard-deletes a tenant row. Dependent business data is not
// cascaded here; retiring a tenant archives it instead.
func (r *GormTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&identity.Tenant{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormTenantRepository implements TenantRepository
var _ identity.TenantRepository = (*GormTenantRepository)(nil)
