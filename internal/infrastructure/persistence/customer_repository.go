package persistence

import (
	"context"
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/partner"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	entityStore[partner.Customer]
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{entityStore[partner.Customer]{db: db}}
}

// FindByID finds a customer by ID through the tenant filter
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*partner.Customer, error) {
	return r.findByID(ctx, id, filter)
}

// FindAll lists customers visible through the tenant filter
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]partner.Customer, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of customers ordered by a whitelisted column
func (r *GormCustomerRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[partner.Customer], error) {
	return r.findPage(ctx, query, filter, CustomerSortFields)
}

// FindByName lists customers whose name contains the search term
func (r *GormCustomerRepository) FindByName(ctx context.Context, name string, filter shared.TenantFilter) ([]partner.Customer, error) {
	return r.findWhere(ctx, filter, "name LIKE ?", "%"+strings.TrimSpace(name)+"%")
}

// Create inserts a new customer; a tenant is mandatory
func (r *GormCustomerRepository) Create(ctx context.Context, customer *partner.Customer) error {
	if customer.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, customer)
}

// Update merge-patches the named fields of a customer
func (r *GormCustomerRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*partner.Customer, error) {
	return r.update(ctx, id, patch, filter)
}

// Delete hard-deletes a customer through the tenant filter
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

// Count counts customers visible through the tenant filter
func (r *GormCustomerRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
