package billing

import (
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogItem is a reusable price-list entry that quote and invoice lines
// can reference. Tenant ownership is mandatory.
type CatalogItem struct {
	shared.TenantEntity
	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"size:1024"`
	Category    string          `gorm:"size:64;index"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Active      bool            `gorm:"not null;default:true"`
}

// TableName returns the database table name
func (CatalogItem) TableName() string {
	return "catalog_items"
}

// NewCatalogItem creates a new active catalog item
func NewCatalogItem(tenantID uuid.UUID, name string, unitPrice decimal.Decimal) (*CatalogItem, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrTenantRequired
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("catalog item name is required")
	}
	return &CatalogItem{
		TenantEntity: shared.NewTenantEntity(tenantID),
		Name:         name,
		UnitPrice:    unitPrice,
		Active:       true,
	}, nil
}
