package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/identity"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/inventory"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/infrastructure/persistence"
)

func newLedgerFixture(t *testing.T) (*LedgerService, *gorm.DB, uuid.UUID) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(persistence.Models()...))

	tenant, err := identity.NewTenant("T"+uuid.NewString()[:8], "Test Tenant")
	require.NoError(t, err)
	require.NoError(t, db.Create(tenant).Error)

	service := NewLedgerService(
		persistence.NewGormInventoryItemRepository(db),
		persistence.NewGormInventoryTransactionRepository(db),
		nil,
	)
	return service, db, tenant.ID
}

func newTrackedItem(t *testing.T, db *gorm.DB, tenantID uuid.UUID, sku string, opening, reorderPoint int64) *inventory.InventoryItem {
	t.Helper()

	item, err := inventory.NewInventoryItem(tenantID, sku, "Test item "+sku, decimal.NewFromInt(opening))
	require.NoError(t, err)
	rp := decimal.NewFromInt(reorderPoint)
	item.ReorderPoint = &rp
	require.NoError(t, db.Create(item).Error)
	return item
}

func currentStock(t *testing.T, service *LedgerService, ctx context.Context, itemID uuid.UUID, filter shared.TenantFilter) decimal.Decimal {
	t.Helper()

	item, err := service.items.FindByID(ctx, itemID, filter)
	require.NoError(t, err)
	require.NotNil(t, item.CurrentStock)
	return *item.CurrentStock
}

func TestLedgerDrawsDownToReorderPoint(t *testing.T) {
	service, db, tenantID := newLedgerFixture(t)
	ctx := context.Background()
	filter := shared.ScopedTo(tenantID)

	item := newTrackedItem(t, db, tenantID, "HINGE-75", 10, 5)

	_, err := service.RecordTransaction(ctx, RecordTransactionInput{
		TenantID:        tenantID,
		InventoryItemID: item.ID,
		Type:            "outgoing",
		Quantity:        decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	assert.True(t, currentStock(t, service, ctx, item.ID, filter).Equal(decimal.NewFromInt(7)))

	low, err := service.LowStockItems(ctx, filter)
	require.NoError(t, err)
	assert.Empty(t, low)

	_, err = service.RecordTransaction(ctx, RecordTransactionInput{
		TenantID:        tenantID,
		InventoryItemID: item.ID,
		Type:            "outgoing",
		Quantity:        decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	assert.True(t, currentStock(t, service, ctx, item.ID, filter).Equal(decimal.NewFromInt(4)))

	low, err = service.LowStockItems(ctx, filter)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, item.ID, low[0].ID)

	history, err := service.ItemHistory(ctx, item.ID, filter)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestRecordTransactionValidation(t *testing.T) {
	service, db, tenantID := newLedgerFixture(t)
	ctx := context.Background()

	item := newTrackedItem(t, db, tenantID, "SEAL-10", 10, 0)

	t.Run("unknown_type", func(t *testing.T) {
		_, err := service.RecordTransaction(ctx, RecordTransactionInput{
			TenantID:        tenantID,
			InventoryItemID: item.ID,
			Type:            "sideways",
			Quantity:        decimal.NewFromInt(1),
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	})

	t.Run("non_positive_quantity", func(t *testing.T) {
		_, err := service.RecordTransaction(ctx, RecordTransactionInput{
			TenantID:        tenantID,
			InventoryItemID: item.ID,
			Type:            "incoming",
			Quantity:        decimal.NewFromInt(0),
		})
		require.Error(t, err)
	})

	t.Run("unknown_item", func(t *testing.T) {
		_, err := service.RecordTransaction(ctx, RecordTransactionInput{
			TenantID:        tenantID,
			InventoryItemID: uuid.New(),
			Type:            "incoming",
			Quantity:        decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("foreign_item_looks_missing", func(t *testing.T) {
		other, err := identity.NewTenant("T"+uuid.NewString()[:8], "Other Tenant")
		require.NoError(t, err)
		require.NoError(t, db.Create(other).Error)

		_, err = service.RecordTransaction(ctx, RecordTransactionInput{
			TenantID:        other.ID,
			InventoryItemID: item.ID,
			Type:            "incoming",
			Quantity:        decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestUpdateTransactionRebalancesStock(t *testing.T) {
	service, db, tenantID := newLedgerFixture(t)
	ctx := context.Background()
	filter := shared.ScopedTo(tenantID)

	item := newTrackedItem(t, db, tenantID, "BAR-200", 10, 0)

	tx, err := service.RecordTransaction(ctx, RecordTransactionInput{
		TenantID:        tenantID,
		InventoryItemID: item.ID,
		Type:            "incoming",
		Quantity:        decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	require.True(t, currentStock(t, service, ctx, item.ID, filter).Equal(decimal.NewFromInt(15)))

	t.Run("quantity_change", func(t *testing.T) {
		two := decimal.NewFromInt(2)
		_, err := service.UpdateTransaction(ctx, tx.ID, UpdateTransactionInput{Quantity: &two}, filter)
		require.NoError(t, err)
		assert.True(t, currentStock(t, service, ctx, item.ID, filter).Equal(decimal.NewFromInt(12)))
	})

	t.Run("direction_change", func(t *testing.T) {
		outgoing := "outgoing"
		_, err := service.UpdateTransaction(ctx, tx.ID, UpdateTransactionInput{Type: &outgoing}, filter)
		require.NoError(t, err)
		assert.True(t, currentStock(t, service, ctx, item.ID, filter).Equal(decimal.NewFromInt(8)))
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		zero := decimal.NewFromInt(0)
		_, err := service.UpdateTransaction(ctx, tx.ID, UpdateTransactionInput{Quantity: &zero}, filter)
		require.Error(t, err)
		assert.True(t, currentStock(t, service, ctx, item.ID, filter).Equal(decimal.NewFromInt(8)))
	})
}

func TestDeleteTransactionReversesStock(t *testing.T) {
	service, db, tenantID := newLedgerFixture(t)
	ctx := context.Background()
	filter := shared.ScopedTo(tenantID)

	item := newTrackedItem(t, db, tenantID, "ROD-5", 10, 0)

	tx, err := service.RecordTransaction(ctx, RecordTransactionInput{
		TenantID:        tenantID,
		InventoryItemID: item.ID,
		Type:            "outgoing",
		Quantity:        decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	require.True(t, currentStock(t, service, ctx, item.ID, filter).Equal(decimal.NewFromInt(6)))

	require.NoError(t, service.DeleteTransaction(ctx, tx.ID, filter))
	assert.True(t, currentStock(t, service, ctx, item.ID, filter).Equal(decimal.NewFromInt(10)))

	_, err = service.txs.FindByID(ctx, tx.ID, filter)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
