package persistence

import (
	"context"
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/partner"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	entityStore[partner.Supplier]
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{entityStore[partner.Supplier]{db: db}}
}

// FindByID finds a supplier by ID through the tenant filter
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*partner.Supplier, error) {
	return r.findByID(ctx, id, filter)
}

// FindAll lists suppliers visible through the tenant filter
func (r *GormSupplierRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]partner.Supplier, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of suppliers ordered by a whitelisted column
func (r *GormSupplierRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[partner.Supplier], error) {
	return r.findPage(ctx, query, filter, SupplierSortFields)
}

// FindByName lists suppliers whose name contains the search term
func (r *GormSupplierRepository) FindByName(ctx context.Context, name string, filter shared.TenantFilter) ([]partner.Supplier, error) {
	return r.findWhere(ctx, filter, "name LIKE ?", "%"+strings.TrimSpace(name)+"%")
}

// Create inserts a new supplier; a tenant is mandatory
func (r *GormSupplierRepository) Create(ctx context.Context, supplier *partner.Supplier) error {
	if supplier.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, supplier)
}

// Update merge-patches the named fields of a supplier
func (r *GormSupplierRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*partner.Supplier, error) {
	return r.update(ctx, id, patch, filter)
}

// Delete hard-deletes a supplier through the tenant filter
func (r *GormSupplierRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

// Count counts suppliers visible through the tenant filter
func (r *GormSupplierRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormSupplierRepository implements SupplierRepository
var _ partner.SupplierRepository = (*GormSupplierRepository)(nil)
