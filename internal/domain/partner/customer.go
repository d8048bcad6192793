// Package partner holds the customer and supplier entities: the external
// parties a tenant does business with.
package partner

import (
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Customer is a party the tenant sells to. Projects hang off customers.
type Customer struct {
	shared.TenantEntity
	Name     string `gorm:"size:255;not null"`
	Email    string `gorm:"size:255"`
	Phone    string `gorm:"size:32"`
	Address  string `gorm:"size:512"`
	City     string `gorm:"size:128"`
	Postcode string `gorm:"size:16"`
	Notes    string `gorm:"size:2048"`
}

// TableName returns the database table name
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer for a tenant
func NewCustomer(tenantID uuid.UUID, name string) (*Customer, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrTenantRequired
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("customer name is required")
	}
	return &Customer{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
	}, nil
}
