package persistence

import (
	"context"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/projectops"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProjectRepository implements ProjectRepository using GORM
type GormProjectRepository struct {
	entityStore[projectops.Project]
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{entityStore[projectops.Project]{db: db}}
}

// FindByID finds a project by ID through the tenant filter
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*projectops.Project, error) {
	return r.findByID(ctx, id, filter)
}

// FindAll lists projects visible through the tenant filter
func (r *GormProjectRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]projectops.Project, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of projects ordered by a whitelisted column
func (r *GormProjectRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[projectops.Project], error) {
	return r.findPage(ctx, query, filter, ProjectSortFields)
}

// FindByCustomer lists a customer's projects
func (r *GormProjectRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.TenantFilter) ([]projectops.Project, error) {
	return r.findWhere(ctx, filter, "customer_id = ?", customerID)
}

// FindByStatus lists projects in a given lifecycle state
func (r *GormProjectRepository) FindByStatus(ctx context.Context, status projectops.ProjectStatus, filter shared.TenantFilter) ([]projectops.Project, error) {
	return r.findWhere(ctx, filter, "status = ?", status)
}

// Create inserts a new project; a tenant is mandatory
func (r *GormProjectRepository) Create(ctx context.Context, project *projectops.Project) error {
	if project.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, project)
}

// Update merge-patches the named fields of a project
func (r *GormProjectRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*projectops.Project, error) {
	return r.update(ctx, id, patch, filter)
}

// Delete hard-deletes the project row only. Callers that need the full
// cascade over dependent records use the project cascade service.
func (r *GormProjectRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

// Count counts projects visible through the tenant filter
func (r *GormProjectRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormProjectRepository implements ProjectRepository
var _ projectops.ProjectRepository = (*GormProjectRepository)(nil)
