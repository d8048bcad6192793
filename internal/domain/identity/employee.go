package identity

import (
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employee is a staff member that can record timesheets. It may optionally
// be linked to a login account via UserID.
type Employee struct {
	shared.TenantEntity
	UserID     *uuid.UUID      `gorm:"type:uuid;index"`
	Name       string          `gorm:"size:255;not null"`
	Email      string          `gorm:"size:255"`
	Phone      string          `gorm:"size:32"`
	JobTitle   string          `gorm:"size:128"`
	HourlyRate decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Active     bool            `gorm:"not null;default:true"`
}

// TableName returns the database table name
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates a new active employee
func NewEmployee(tenantID uuid.UUID, name string) (*Employee, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrTenantRequired
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("employee name is required")
	}
	return &Employee{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
		HourlyRate:   decimal.Zero,
		Active:       true,
	}, nil
}
