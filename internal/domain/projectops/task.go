package projectops

import (
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// TaskList groups tasks for a project. AllTasksCompleted and ClientSignoff
// gate downstream billing workflows.
type TaskList struct {
	shared.TenantEntity
	ProjectID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name              string    `gorm:"size:255;not null"`
	AllTasksCompleted bool      `gorm:"not null;default:false"`
	ClientSignoff     bool      `gorm:"not null;default:false"`
}

// TableName returns the database table name
func (TaskList) TableName() string {
	return "task_lists"
}

// NewTaskList creates a new task list for a project
func NewTaskList(tenantID, projectID uuid.UUID, name string) (*TaskList, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrTenantRequired
	}
	if projectID == uuid.Nil {
		return nil, shared.NewValidationError("project id is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("task list name is required")
	}
	return &TaskList{
		TenantEntity: shared.NewTenantEntity(tenantID),
		ProjectID:    projectID,
		Name:         name,
	}, nil
}

// ReadyForBilling reports whether the list gates billing open
func (l *TaskList) ReadyForBilling() bool {
	return l.AllTasksCompleted && l.ClientSignoff
}

// Task is a single item on a task list.
type Task struct {
	shared.TenantEntity
	TaskListID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"size:1024;not null"`
	Completed   bool      `gorm:"not null;default:false"`
	SortOrder   int       `gorm:"not null;default:0"`
}

// TableName returns the database table name
func (Task) TableName() string {
	return "tasks"
}

// NewTask creates a new task on a list
func NewTask(tenantID, taskListID uuid.UUID, description string) (*Task, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrTenantRequired
	}
	if taskListID == uuid.Nil {
		return nil, shared.NewValidationError("task list id is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewValidationError("task description is required")
	}
	return &Task{
		TenantEntity: shared.NewTenantEntity(tenantID),
		TaskListID:   taskListID,
		Description:  description,
	}, nil
}
