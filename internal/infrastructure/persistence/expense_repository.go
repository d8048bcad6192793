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

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	entityStore[projectops.Expense]
	logger *zap.Logger
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB, logger *zap.Logger) *GormExpenseRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormExpenseRepository{
		entityStore: entityStore[projectops.Expense]{db: db},
		logger:      logger,
	}
}

func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*projectops.Expense, error) {
	return r.findByID(ctx, id, filter)
}

func (r *GormExpenseRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]projectops.Expense, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of expenses ordered by a whitelisted column
func (r *GormExpenseRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[projectops.Expense], error) {
	return r.findPage(ctx, query, filter, ExpenseSortFields)
}

// FindByProject lists the expenses charged to a project
func (r *GormExpenseRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]projectops.Expense, error) {
	return r.findWhere(ctx, filter, "project_id = ?", projectID)
}

// FindByDateRange lists expenses incurred inside [from, to]. Storage
// errors are logged and degrade to an empty slice, matching the
// timesheet reporting query.
func (r *GormExpenseRepository) FindByDateRange(ctx context.Context, from, to time.Time, filter shared.TenantFilter) []projectops.Expense {
	var expenses []projectops.Expense
	err := r.scoped(ctx, filter).
		Where("incurred_on >= ? AND incurred_on <= ?", from, to).
		Order("incurred_on ASC").
		Find(&expenses).Error
	if err != nil {
		r.logger.Warn("expense date-range query failed",
			zap.Time("from", from),
			zap.Time("to", to),
			zap.Error(err))
		return []projectops.Expense{}
	}
	return expenses
}

func (r *GormExpenseRepository) Create(ctx context.Context, expense *projectops.Expense) error {
	if expense.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, expense)
}

func (r *GormExpenseRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*projectops.Expense, error) {
	return r.update(ctx, id, patch, filter)
}

func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

func (r *GormExpenseRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormExpenseRepository implements ExpenseRepository
var _ projectops.ExpenseRepository = (*GormExpenseRepository)(nil)
