package partner

import (
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Supplier is a party the tenant buys from via purchase orders.
type Supplier struct {
	shared.TenantEntity
	Name        string `gorm:"size:255;not null"`
	ContactName string `gorm:"size:255"`
	Email       string `gorm:"size:255"`
	Phone       string `gorm:"size:32"`
	Address     string `gorm:"size:512"`
	Notes       string `gorm:"size:2048"`
}

// TableName returns the database table name
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier for a tenant
func NewSupplier(tenantID uuid.UUID, name string) (*Supplier, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrTenantRequired
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("supplier name is required")
	}
	return &Supplier{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
	}, nil
}
