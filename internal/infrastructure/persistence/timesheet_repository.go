package persistence

import (
	"context"
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/projectops"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormTimesheetRepository implements TimesheetRepository using GORM
type GormTimesheetRepository struct {
	entityStore[projectops.Timesheet]
	logger *zap.Logger
}

// NewGormTimesheetRepository creates a new GormTimesheetRepository
func NewGormTimesheetRepository(db *gorm.DB, logger *zap.Logger) *GormTimesheetRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormTimesheetRepository{
		entityStore: entityStore[projectops.Timesheet]{db: db},
		logger:      logger,
	}
}

func (r *GormTimesheetRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*projectops.Timesheet, error) {
	return r.findByID(ctx, id, filter)
}

func (r *GormTimesheetRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]projectops.Timesheet, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of timesheets ordered by a whitelisted column
func (r *GormTimesheetRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[projectops.Timesheet], error) {
	return r.findPage(ctx, query, filter, TimesheetSortFields)
}

// FindByEmployee lists an employee's timesheet entries
func (r *GormTimesheetRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID, filter shared.TenantFilter) ([]projectops.Timesheet, error) {
	return r.findWhere(ctx, filter, "employee_id = ?", employeeID)
}

// FindByProject lists the timesheet entries booked to a project
func (r *GormTimesheetRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]projectops.Timesheet, error) {
	return r.findWhere(ctx, filter, "project_id = ?", projectID)
}

// FindByDateRange lists entries whose work date falls inside [from, to].
// Storage errors are logged and degrade to an empty slice; the reporting
// pages that call this render "no rows" rather than an error page.
func (r *GormTimesheetRepository) FindByDateRange(ctx context.Context, from, to time.Time, filter shared.TenantFilter) []projectops.Timesheet {
	var timesheets []projectops.Timesheet
	err := r.scoped(ctx, filter).
		Where("work_date >= ? AND work_date <= ?", from, to).
		Order("work_date ASC").
		Find(&timesheets).Error
	if err != nil {
		r.logger.Warn("timesheet date-range query failed",
			zap.Time("from", from),
			zap.Time("to", to),
			zap.Error(err))
		return []projectops.Timesheet{}
	}
	return timesheets
}

func (r *GormTimesheetRepository) Create(ctx context.Context, timesheet *projectops.Timesheet) error {
	if timesheet.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, timesheet)
}

func (r *GormTimesheetRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*projectops.Timesheet, error) {
	return r.update(ctx, id, patch, filter)
}

func (r *GormTimesheetRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

func (r *GormTimesheetRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormTimesheetRepository implements TimesheetRepository
var _ projectops.TimesheetRepository = (*GormTimesheetRepository)(nil)
