package identity

import (
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
)

// TenantStatus represents the lifecycle status of a tenant
type TenantStatus string

const (
	// TenantStatusActive is a tenant in good standing
	TenantStatusActive TenantStatus = "active"
	// TenantStatusSuspended is a tenant whose access has been suspended
	TenantStatusSuspended TenantStatus = "suspended"
	// TenantStatusArchived is a tenant that has been retired
	TenantStatusArchived TenantStatus = "archived"
)

// Tenant is the top-level data partition. Every business entity carries a
// reference to exactly one tenant.
type Tenant struct {
	shared.BaseEntity
	Code   string       `gorm:"size:32;uniqueIndex;not null"`
	Name   string       `gorm:"size:255;not null"`
	Status TenantStatus `gorm:"size:20;not null;default:active"`
}

// TableName returns the database table name
func (Tenant) TableName() string {
	return "tenants"
}

// NewTenant creates a new active tenant
func NewTenant(code, name string) (*Tenant, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewValidationError("tenant code is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("tenant name is required")
	}
	return &Tenant{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       name,
		Status:     TenantStatusActive,
	}, nil
}

// IsActive reports whether the tenant may access the system
func (t *Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}
