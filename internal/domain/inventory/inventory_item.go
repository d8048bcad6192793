// Package inventory holds stock items and the signed transaction ledger
// their stock levels are derived from.
package inventory

import (
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem is a stocked product. CurrentStock is a derived balance:
// its sole source of truth is the signed sum of the item's inventory
// transactions, and callers never write it directly. A nil CurrentStock
// means the item is untracked and ledger mutations leave it untouched.
//
// ReorderPoint is the low-stock threshold; MinimumStock is its legacy
// name, still honoured when ReorderPoint is unset.
type InventoryItem struct {
	shared.BaseEntity
	TenantID     uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_items_tenant_sku"`
	SKU          string           `gorm:"size:64;not null;uniqueIndex:idx_inventory_items_tenant_sku"`
	Name         string           `gorm:"size:255;not null"`
	Description  string           `gorm:"size:1024"`
	CurrentStock *decimal.Decimal `gorm:"type:decimal(12,3)"`
	ReorderPoint *decimal.Decimal `gorm:"type:decimal(12,3)"`
	MinimumStock *decimal.Decimal `gorm:"type:decimal(12,3)"`
	UnitCost     decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	Location     string           `gorm:"size:128"`
}

// TableName returns the database table name
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// GetTenantID returns the owning tenant ID
func (i *InventoryItem) GetTenantID() uuid.UUID {
	return i.TenantID
}

// NewInventoryItem creates a tracked inventory item with the given
// opening stock
func NewInventoryItem(tenantID uuid.UUID, sku, name string, openingStock decimal.Decimal) (*InventoryItem, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrTenantRequired
	}
	sku = strings.ToUpper(strings.TrimSpace(sku))
	if sku == "" {
		return nil, shared.NewValidationError("sku is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("item name is required")
	}
	stock := openingStock
	return &InventoryItem{
		BaseEntity:   shared.NewBaseEntity(),
		TenantID:     tenantID,
		SKU:          sku,
		Name:         name,
		CurrentStock: &stock,
		UnitCost:     decimal.Zero,
	}, nil
}

// LowStockThreshold returns the effective threshold, preferring
// ReorderPoint over the legacy MinimumStock. Nil means no threshold.
func (i *InventoryItem) LowStockThreshold() *decimal.Decimal {
	if i.ReorderPoint != nil {
		return i.ReorderPoint
	}
	return i.MinimumStock
}

// IsLowStock reports whether the tracked stock has fallen to or below the
// threshold. Untracked items and items without a threshold are never low.
func (i *InventoryItem) IsLowStock() bool {
	threshold := i.LowStockThreshold()
	if i.CurrentStock == nil || threshold == nil {
		return false
	}
	return i.CurrentStock.LessThanOrEqual(*threshold)
}
