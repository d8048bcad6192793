package inventory

import (
	"context"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItemRepository persists inventory items. CurrentStock is only
// ever written through AdjustStock so concurrent ledger mutations cannot
// lose updates.
type InventoryItemRepository interface {
	shared.Repository[InventoryItem]
	FindBySKU(ctx context.Context, sku string, filter shared.TenantFilter) (*InventoryItem, error)
	FindLowStock(ctx context.Context, filter shared.TenantFilter) ([]InventoryItem, error)
	// AdjustStock applies a signed delta atomically at the store
	// (current_stock = current_stock + delta). Items that are missing or
	// untracked (null stock) are left untouched without error.
	AdjustStock(ctx context.Context, itemID uuid.UUID, delta decimal.Decimal, filter shared.TenantFilter) error
}

// InventoryTransactionRepository persists ledger entries. Tenant-filtered
// reads scope either by the row's own tenant column or, for historical
// rows without one, transitively through the owning inventory item.
type InventoryTransactionRepository interface {
	shared.Repository[InventoryTransaction]
	FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.TenantFilter) ([]InventoryTransaction, error)
	FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]InventoryTransaction, error)
	FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID, filter shared.TenantFilter) ([]InventoryTransaction, error)
	DeleteByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) error
}
