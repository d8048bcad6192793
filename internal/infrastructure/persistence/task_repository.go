package persistence

import (
	"context"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/projectops"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTaskListRepository implements TaskListRepository using GORM
type GormTaskListRepository struct {
	entityStore[projectops.TaskList]
	tasks entityStore[projectops.Task]
}

// NewGormTaskListRepository creates a new GormTaskListRepository
func NewGormTaskListRepository(db *gorm.DB) *GormTaskListRepository {
	return &GormTaskListRepository{
		entityStore: entityStore[projectops.TaskList]{db: db},
		tasks:       entityStore[projectops.Task]{db: db},
	}
}

func (r *GormTaskListRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*projectops.TaskList, error) {
	return r.findByID(ctx, id, filter)
}

func (r *GormTaskListRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]projectops.TaskList, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of task lists ordered by a whitelisted column
func (r *GormTaskListRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[projectops.TaskList], error) {
	return r.findPage(ctx, query, filter, CommonSortFields)
}

// FindByProject lists the task lists attached to a project
func (r *GormTaskListRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]projectops.TaskList, error) {
	return r.findWhere(ctx, filter, "project_id = ?", projectID)
}

func (r *GormTaskListRepository) Create(ctx context.Context, list *projectops.TaskList) error {
	if list.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, list)
}

func (r *GormTaskListRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*projectops.TaskList, error) {
	return r.update(ctx, id, patch, filter)
}

// Delete removes a task list and every task inside it
func (r *GormTaskListRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	if err := r.tasks.deleteWhere(ctx, filter, "task_list_id = ?", id); err != nil {
		return err
	}
	return r.deleteByID(ctx, id, filter)
}

func (r *GormTaskListRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormTaskListRepository implements TaskListRepository
var _ projectops.TaskListRepository = (*GormTaskListRepository)(nil)

// GormTaskRepository implements TaskRepository using GORM
type GormTaskRepository struct {
	entityStore[projectops.Task]
}

// NewGormTaskRepository creates a new GormTaskRepository
func NewGormTaskRepository(db *gorm.DB) *GormTaskRepository {
	return &GormTaskRepository{entityStore[projectops.Task]{db: db}}
}

func (r *GormTaskRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*projectops.Task, error) {
	return r.findByID(ctx, id, filter)
}

func (r *GormTaskRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]projectops.Task, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of tasks ordered by a whitelisted column
func (r *GormTaskRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[projectops.Task], error) {
	return r.findPage(ctx, query, filter, CommonSortFields)
}

// FindByTaskList lists tasks in display order
func (r *GormTaskRepository) FindByTaskList(ctx context.Context, taskListID uuid.UUID, filter shared.TenantFilter) ([]projectops.Task, error) {
	var tasks []projectops.Task
	err := r.scoped(ctx, filter).
		Where("task_list_id = ?", taskListID).
		Order("sort_order ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, translateError(err)
	}
	return tasks, nil
}

func (r *GormTaskRepository) Create(ctx context.Context, task *projectops.Task) error {
	if task.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, task)
}

func (r *GormTaskRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*projectops.Task, error) {
	return r.update(ctx, id, patch, filter)
}

func (r *GormTaskRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

func (r *GormTaskRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormTaskRepository implements TaskRepository
var _ projectops.TaskRepository = (*GormTaskRepository)(nil)
