package projectops

import (
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Timesheet records hours an employee worked on a given day, optionally
// against a project.
type Timesheet struct {
	shared.TenantEntity
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProjectID  *uuid.UUID      `gorm:"type:uuid;index"`
	WorkDate   time.Time       `gorm:"not null;index"`
	Hours      decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	Notes      string          `gorm:"size:1024"`
}

// TableName returns the database table name
func (Timesheet) TableName() string {
	return "timesheets"
}

// NewTimesheet creates a new timesheet entry
func NewTimesheet(tenantID, employeeID uuid.UUID, workDate time.Time, hours decimal.Decimal) (*Timesheet, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrTenantRequired
	}
	if employeeID == uuid.Nil {
		return nil, shared.NewValidationError("employee id is required")
	}
	if hours.IsNegative() || hours.IsZero() {
		return nil, shared.NewValidationError("hours must be positive")
	}
	return &Timesheet{
		TenantEntity: shared.NewTenantEntity(tenantID),
		EmployeeID:   employeeID,
		WorkDate:     workDate,
		Hours:        hours,
	}, nil
}

// ExpenseCategory classifies an expense
type ExpenseCategory string

const (
	// ExpenseCategoryMaterials is material purchases
	ExpenseCategoryMaterials ExpenseCategory = "materials"
	// ExpenseCategoryTravel is travel and mileage
	ExpenseCategoryTravel ExpenseCategory = "travel"
	// ExpenseCategorySubcontract is subcontracted labour
	ExpenseCategorySubcontract ExpenseCategory = "subcontract"
	// ExpenseCategoryOther is everything else
	ExpenseCategoryOther ExpenseCategory = "other"
)

// Expense is a cost recorded against the tenant, optionally per project.
type Expense struct {
	shared.TenantEntity
	ProjectID   *uuid.UUID      `gorm:"type:uuid;index"`
	Category    ExpenseCategory `gorm:"size:32;not null;default:other"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IncurredOn  time.Time       `gorm:"not null;index"`
	Description string          `gorm:"size:1024"`
}

// TableName returns the database table name
func (Expense) TableName() string {
	return "expenses"
}
