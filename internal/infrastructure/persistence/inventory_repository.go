package persistence

import (
	"context"
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/inventory"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormInventoryItemRepository implements InventoryItemRepository using GORM
type GormInventoryItemRepository struct {
	entityStore[inventory.InventoryItem]
}

// NewGormInventoryItemRepository creates a new GormInventoryItemRepository
func NewGormInventoryItemRepository(db *gorm.DB) *GormInventoryItemRepository {
	return &GormInventoryItemRepository{entityStore[inventory.InventoryItem]{db: db}}
}

func (r *GormInventoryItemRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*inventory.InventoryItem, error) {
	return r.findByID(ctx, id, filter)
}

func (r *GormInventoryItemRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]inventory.InventoryItem, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of inventory items ordered by a whitelisted
// column
func (r *GormInventoryItemRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[inventory.InventoryItem], error) {
	return r.findPage(ctx, query, filter, InventoryItemSortFields)
}

// FindBySKU finds an item by its stock-keeping unit, unique per tenant
func (r *GormInventoryItemRepository) FindBySKU(ctx context.Context, sku string, filter shared.TenantFilter) (*inventory.InventoryItem, error) {
	return r.firstWhere(ctx, filter, "sku = ?", strings.ToUpper(strings.TrimSpace(sku)))
}

// FindLowStock lists tracked items at or below their reorder threshold.
// The reorder point wins when set; older rows fall back to minimum_stock.
func (r *GormInventoryItemRepository) FindLowStock(ctx context.Context, filter shared.TenantFilter) ([]inventory.InventoryItem, error) {
	return r.findWhere(ctx, filter,
		"current_stock IS NOT NULL AND COALESCE(reorder_point, minimum_stock) IS NOT NULL AND current_stock <= COALESCE(reorder_point, minimum_stock)")
}

// AdjustStock applies a signed delta in a single UPDATE so concurrent
// ledger writes serialise at the store instead of losing increments.
// Untracked items (null current_stock) are left untouched without error.
func (r *GormInventoryItemRepository) AdjustStock(ctx context.Context, itemID uuid.UUID, delta decimal.Decimal, filter shared.TenantFilter) error {
	result := r.scoped(ctx, filter).
		Model(&inventory.InventoryItem{}).
		Where("id = ? AND current_stock IS NOT NULL", itemID).
		Update("current_stock", gorm.Expr("current_stock + ?", delta))
	return translateError(result.Error)
}

func (r *GormInventoryItemRepository) Create(ctx context.Context, item *inventory.InventoryItem) error {
	if item.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, item)
}

func (r *GormInventoryItemRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*inventory.InventoryItem, error) {
	// Stock is ledger-derived; direct writes would desynchronise it from
	// the transaction history.
	sanitised := make(map[string]any, len(patch))
	for k, v := range patch {
		sanitised[k] = v
	}
	delete(sanitised, "current_stock")
	return r.update(ctx, id, sanitised, filter)
}

func (r *GormInventoryItemRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

func (r *GormInventoryItemRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormInventoryItemRepository implements InventoryItemRepository
var _ inventory.InventoryItemRepository = (*GormInventoryItemRepository)(nil)
