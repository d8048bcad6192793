package persistence

import (
	"context"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/identity"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements EmployeeRepository using GORM
type GormEmployeeRepository struct {
	entityStore[identity.Employee]
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{entityStore[identity.Employee]{db: db}}
}

// FindByID finds an employee by ID through the tenant filter
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*identity.Employee, error) {
	return r.findByID(ctx, id, filter)
}

// FindAll lists employees visible through the tenant filter
func (r *GormEmployeeRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]identity.Employee, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of employees ordered by a whitelisted column
func (r *GormEmployeeRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[identity.Employee], error) {
	return r.findPage(ctx, query, filter, EmployeeSortFields)
}

// FindByUser finds the employee linked to a login account
func (r *GormEmployeeRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.TenantFilter) (*identity.Employee, error) {
	return r.firstWhere(ctx, filter, "user_id = ?", userID)
}

// FindActive lists employees still on the books
func (r *GormEmployeeRepository) FindActive(ctx context.Context, filter shared.TenantFilter) ([]identity.Employee, error) {
	return r.findWhere(ctx, filter, "active = ?", true)
}

// Create inserts a new employee; a tenant is mandatory
func (r *GormEmployeeRepository) Create(ctx context.Context, employee *identity.Employee) error {
	if employee.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, employee)
}

// Update merge-patches the named fields of an employee
func (r *GormEmployeeRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*identity.Employee, error) {
	return r.update(ctx, id, patch, filter)
}

// Delete hard-deletes an employee through the tenant filter
func (r *GormEmployeeRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

// Count counts employees visible through the tenant filter
func (r *GormEmployeeRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormEmployeeRepository implements EmployeeRepository
var _ identity.EmployeeRepository = (*GormEmployeeRepository)(nil)
