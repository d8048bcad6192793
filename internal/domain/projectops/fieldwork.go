package projectops

import (
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// SurveyStatus represents the state of a site survey
type SurveyStatus string

const (
	// SurveyStatusScheduled is a survey booked but not performed
	SurveyStatusScheduled SurveyStatus = "scheduled"
	// SurveyStatusCompleted is a survey whose field work is done.
	// A completed survey blocks deletion of the quote it was raised for.
	SurveyStatusCompleted SurveyStatus = "completed"
	// SurveyStatusCancelled is a survey that will not happen
	SurveyStatusCancelled SurveyStatus = "cancelled"
)

// Survey is a site visit performed before or during a project.
type Survey struct {
	shared.TenantEntity
	ProjectID     uuid.UUID    `gorm:"type:uuid;not null;index"`
	ScheduledDate *time.Time   `gorm:""`
	Status        SurveyStatus `gorm:"size:20;not null;default:scheduled"`
	AssignedTo    *uuid.UUID   `gorm:"type:uuid"`
	Notes         string       `gorm:"size:2048"`
}

// TableName returns the database table name
func (Survey) TableName() string {
	return "surveys"
}

// IsCompleted reports whether the field work has been performed
func (s *Survey) IsCompleted() bool {
	return s.Status == SurveyStatusCompleted
}

// InstallationStatus represents the state of an installation visit
type InstallationStatus string

const (
	// InstallationStatusScheduled is an installation booked but not started
	InstallationStatusScheduled InstallationStatus = "scheduled"
	// InstallationStatusInProgress is an installation under way
	InstallationStatusInProgress InstallationStatus = "in_progress"
	// InstallationStatusCompleted is a finished installation
	InstallationStatusCompleted InstallationStatus = "completed"
)

// Installation is the on-site delivery of a project.
type Installation struct {
	shared.TenantEntity
	ProjectID     uuid.UUID          `gorm:"type:uuid;not null;index"`
	ScheduledDate *time.Time         `gorm:""`
	Status        InstallationStatus `gorm:"size:20;not null;default:scheduled"`
	AssignedTo    *uuid.UUID         `gorm:"type:uuid"`
	Notes         string             `gorm:"size:2048"`
}

// TableName returns the database table name
func (Installation) TableName() string {
	return "installations"
}
