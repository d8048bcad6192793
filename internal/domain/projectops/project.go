// Package projectops holds the project aggregate and the entities that
// exist only in reference to a project: surveys, installations, task
// lists, timesheets, expenses and file attachments.
package projectops

import (
	"strings"
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	// ProjectStatusPending is a project not yet started
	ProjectStatusPending ProjectStatus = "pending"
	// ProjectStatusInProgress is an active project
	ProjectStatusInProgress ProjectStatus = "in_progress"
	// ProjectStatusCompleted is a finished project
	ProjectStatusCompleted ProjectStatus = "completed"
	// ProjectStatusCancelled is an abandoned project
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// Project is the central unit of work for a customer. Quotes, invoices,
// surveys, installations, task lists, expenses, purchase orders and
// inventory transactions all reference a project; deleting a project
// cascades to every one of them.
type Project struct {
	shared.TenantEntity
	CustomerID  uuid.UUID     `gorm:"type:uuid;not null;index"`
	Name        string        `gorm:"size:255;not null"`
	Description string        `gorm:"size:2048"`
	Status      ProjectStatus `gorm:"size:20;not null;default:pending"`
	StartDate   *time.Time    `gorm:""`
	Deadline    *time.Time    `gorm:""`
}

// TableName returns the database table name
func (Project) TableName() string {
	return "projects"
}

// NewProject creates a new pending project
func NewProject(tenantID, customerID uuid.UUID, name string) (*Project, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrTenantRequired
	}
	if customerID == uuid.Nil {
		return nil, shared.NewValidationError("customer id is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("project name is required")
	}
	return &Project{
		TenantEntity: shared.NewTenantEntity(tenantID),
		CustomerID:   customerID,
		Name:         name,
		Status:       ProjectStatusPending,
	}, nil
}
