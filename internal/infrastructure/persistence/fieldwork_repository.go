package persistence

import (
	"context"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/projectops"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSurveyRepository implements SurveyRepository using GORM
type GormSurveyRepository struct {
	entityStore[projectops.Survey]
}

// NewGormSurveyRepository creates a new GormSurveyRepository
func NewGormSurveyRepository(db *gorm.DB) *GormSurveyRepository {
	return &GormSurveyRepository{entityStore[projectops.Survey]{db: db}}
}

func (r *GormSurveyRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*projectops.Survey, error) {
	return r.findByID(ctx, id, filter)
}

func (r *GormSurveyRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]projectops.Survey, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of surveys ordered by a whitelisted column
func (r *GormSurveyRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[projectops.Survey], error) {
	return r.findPage(ctx, query, filter, CommonSortFields)
}

// FindByProject lists the surveys booked against a project
func (r *GormSurveyRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]projectops.Survey, error) {
	return r.findWhere(ctx, filter, "project_id = ?", projectID)
}

func (r *GormSurveyRepository) Create(ctx context.Context, survey *projectops.Survey) error {
	if survey.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, survey)
}

func (r *GormSurveyRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*projectops.Survey, error) {
	return r.update(ctx, id, patch, filter)
}

func (r *GormSurveyRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

func (r *GormSurveyRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormSurveyRepository implements SurveyRepository
var _ projectops.SurveyRepository = (*GormSurveyRepository)(nil)

// GormInstallationRepository implements InstallationRepository using GORM
type GormInstallationRepository struct {
	entityStore[projectops.Installation]
}

// NewGormInstallationRepository creates a new GormInstallationRepository
func NewGormInstallationRepository(db *gorm.DB) *GormInstallationRepository {
	return &GormInstallationRepository{entityStore[projectops.Installation]{db: db}}
}

func (r *GormInstallationRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*projectops.Installation, error) {
	return r.findByID(ctx, id, filter)
}

func (r *GormInstallationRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]projectops.Installation, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of installations ordered by a whitelisted column
func (r *GormInstallationRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[projectops.Installation], error) {
	return r.findPage(ctx, query, filter, CommonSortFields)
}

// FindByProject lists the installations booked against a project
func (r *GormInstallationRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]projectops.Installation, error) {
	return r.findWhere(ctx, filter, "project_id = ?", projectID)
}

func (r *GormInstallationRepository) Create(ctx context.Context, installation *projectops.Installation) error {
	if installation.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, installation)
}

func (r *GormInstallationRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*projectops.Installation, error) {
	return r.update(ctx, id, patch, filter)
}

func (r *GormInstallationRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

func (r *GormInstallationRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormInstallationRepository implements InstallationRepository
var _ projectops.InstallationRepository = (*GormInstallationRepository)(nil)
