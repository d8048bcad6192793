package persistence

import (
	"context"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/inventory"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInventoryTransactionRepository implements
// InventoryTransactionRepository using GORM.
//
// Ledger rows written before tenant stamping have a null tenant_id, so a
// plain tenant_id equality would hide them from their rightful owner.
// Scoped reads therefore accept a row when either its own tenant column
// matches or, for null rows, the owning inventory item belongs to the
// tenant.
type GormInventoryTransactionRepository struct {
	entityStore[inventory.InventoryTransaction]
}

// NewGormInventoryTransactionRepository creates a new
// GormInventoryTransactionRepository
func NewGormInventoryTransactionRepository(db *gorm.DB) *GormInventoryTransactionRepository {
	return &GormInventoryTransactionRepository{entityStore[inventory.InventoryTransaction]{db: db}}
}

// ledgerScoped applies the transitive tenant condition
func (r *GormInventoryTransactionRepository) ledgerScoped(ctx context.Context, filter shared.TenantFilter) *gorm.DB {
	db := r.db.WithContext(ctx)
	if !filter.IsScoped() {
		return db
	}
	return db.Where(
		"tenant_id = ? OR (tenant_id IS NULL AND inventory_item_id IN (SELECT id FROM inventory_items WHERE tenant_id = ?))",
		*filter.TenantID, *filter.TenantID,
	)
}

func (r *GormInventoryTransactionRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*inventory.InventoryTransaction, error) {
	var tx inventory.InventoryTransaction
	if err := r.ledgerScoped(ctx, filter).First(&tx, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &tx, nil
}

func (r *GormInventoryTransactionRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]inventory.InventoryTransaction, error) {
	var txs []inventory.InventoryTransaction
	if err := r.ledgerScoped(ctx, filter).Find(&txs).Error; err != nil {
		return nil, translateError(err)
	}
	return txs, nil
}

// FindPage lists one page of ledger entries ordered by a whitelisted
// column, read through the transitive tenant condition
func (r *GormInventoryTransactionRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[inventory.InventoryTransaction], error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	sortField := ValidateSortField(query.OrderBy, InventoryTransactionSortFields, "created_at")
	sortOrder := ValidateSortOrder(query.OrderDir)

	total, err := r.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[inventory.InventoryTransaction]{}, err
	}

	var txs []inventory.InventoryTransaction
	err = r.ledgerScoped(ctx, filter).
		Order(sortField + " " + sortOrder).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&txs).Error
	if err != nil {
		return shared.Paginated[inventory.InventoryTransaction]{}, translateError(err)
	}
	return shared.NewPaginated(txs, total, page, pageSize), nil
}

// FindByItem lists the ledger entries of one inventory item, newest first
func (r *GormInventoryTransactionRepository) FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.TenantFilter) ([]inventory.InventoryTransaction, error) {
	var txs []inventory.InventoryTransaction
	err := r.ledgerScoped(ctx, filter).
		Where("inventory_item_id = ?", itemID).
		Order("occurred_at DESC").
		Find(&txs).Error
	if err != nil {
		return nil, translateError(err)
	}
	return txs, nil
}

// FindByProject lists the ledger entries booked to a project
func (r *GormInventoryTransactionRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]inventory.InventoryTransaction, error) {
	var txs []inventory.InventoryTransaction
	err := r.ledgerScoped(ctx, filter).
		Where("project_id = ?", projectID).
		Find(&txs).Error
	if err != nil {
		return nil, translateError(err)
	}
	return txs, nil
}

// FindByPurchaseOrder lists the ledger entries linked to a purchase order
func (r *GormInventoryTransactionRepository) FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID, filter shared.TenantFilter) ([]inventory.InventoryTransaction, error) {
	var txs []inventory.InventoryTransaction
	err := r.ledgerScoped(ctx, filter).
		Where("purchase_order_id = ?", purchaseOrderID).
		Find(&txs).Error
	if err != nil {
		return nil, translateError(err)
	}
	return txs, nil
}

// DeleteByProject removes the ledger entries booked to a project. Used by
// the project cascade; zero matches is a no-op.
func (r *GormInventoryTransactionRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) error {
	result := r.ledgerScoped(ctx, filter).
		Where("project_id = ?", projectID).
		Delete(&inventory.InventoryTransaction{})
	return translateError(result.Error)
}

// Create inserts a ledger entry. New entries are always tenant-stamped;
// only historical rows may carry a null tenant.
func (r *GormInventoryTransactionRepository) Create(ctx context.Context, tx *inventory.InventoryTransaction) error {
	if tx.TenantID == nil || *tx.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, tx)
}

func (r *GormInventoryTransactionRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*inventory.InventoryTransaction, error) {
	sanitised := make(map[string]any, len(patch))
	for k, v := range patch {
		sanitised[k] = v
	}
	for _, col := range protectedColumns {
		delete(sanitised, col)
	}
	if len(sanitised) == 0 {
		return r.FindByID(ctx, id, filter)
	}

	result := r.ledgerScoped(ctx, filter).
		Model(&inventory.InventoryTransaction{}).
		Where("id = ?", id).
		Updates(sanitised)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}
	return r.FindByID(ctx, id, filter)
}

func (r *GormInventoryTransactionRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	result := r.ledgerScoped(ctx, filter).
		Where("id = ?", id).
		Delete(&inventory.InventoryTransaction{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormInventoryTransactionRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	var n int64
	err := r.ledgerScoped(ctx, filter).
		Model(&inventory.InventoryTransaction{}).
		Count(&n).Error
	if err != nil {
		return 0, translateError(err)
	}
	return n, nil
}

// Ensure GormInventoryTransactionRepository implements
// InventoryTransactionRepository
var _ inventory.InventoryTransactionRepository = (*GormInventoryTransactionRepository)(nil)
