package projectops

import (
	"context"
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// ProjectRepository persists projects
type ProjectRepository interface {
	shared.Repository[Project]
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.TenantFilter) ([]Project, error)
	FindByStatus(ctx context.Context, status ProjectStatus, filter shared.TenantFilter) ([]Project, error)
}

// SurveyRepository persists surveys
type SurveyRepository interface {
	shared.Repository[Survey]
	FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]Survey, error)
}

// InstallationRepository persists installations
type InstallationRepository interface {
	shared.Repository[Installation]
	FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]Installation, error)
}

// TaskListRepository persists task lists
type TaskListRepository interface {
	shared.Repository[TaskList]
	FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]TaskList, error)
}

// TaskRepository persists tasks
type TaskRepository interface {
	shared.Repository[Task]
	FindByTaskList(ctx context.Context, taskListID uuid.UUID, filter shared.TenantFilter) ([]Task, error)
}

// TimesheetRepository persists timesheets.
//
// FindByDateRange swallows storage errors and returns an empty slice so a
// broken reporting query degrades to "no rows" instead of failing the
// whole page. Callers that need hard errors use FindAll.
type TimesheetRepository interface {
	shared.Repository[Timesheet]
	FindByEmployee(ctx context.Context, employeeID uuid.UUID, filter shared.TenantFilter) ([]Timesheet, error)
	FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]Timesheet, error)
	FindByDateRange(ctx context.Context, from, to time.Time, filter shared.TenantFilter) []Timesheet
}

// ExpenseRepository persists expenses
type ExpenseRepository interface {
	shared.Repository[Expense]
	FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]Expense, error)
	FindByDateRange(ctx context.Context, from, to time.Time, filter shared.TenantFilter) []Expense
}

// FileAttachmentRepository persists attachment records
type FileAttachmentRepository interface {
	shared.Repository[FileAttachment]
	FindByRelatedEntity(ctx context.Context, relatedType string, relatedID uuid.UUID, filter shared.TenantFilter) ([]FileAttachment, error)
	DeleteByRelatedEntity(ctx context.Context, relatedType string, relatedID uuid.UUID, filter shared.TenantFilter) error
}
