package procurement

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	appinventory "github.com/AutomationProtocolsService/business-management-platform-sub000/internal/application/inventory"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/identity"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/inventory"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/partner"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/procurement"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/infrastructure/persistence"
)

type receiveFixture struct {
	db       *gorm.DB
	service  *ReceiveService
	items    *persistence.GormInventoryItemRepository
	orders   *persistence.GormPurchaseOrderRepository
	lines    *persistence.GormPurchaseOrderItemRepository
	tenantID uuid.UUID
}

func newReceiveFixture(t *testing.T) *receiveFixture {
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

	items := persistence.NewGormInventoryItemRepository(db)
	orders := persistence.NewGormPurchaseOrderRepository(db)
	lines := persistence.NewGormPurchaseOrderItemRepository(db)
	ledger := appinventory.NewLedgerService(items, persistence.NewGormInventoryTransactionRepository(db), nil)

	return &receiveFixture{
		db:       db,
		service:  NewReceiveService(orders, lines, ledger, nil),
		items:    items,
		orders:   orders,
		lines:    lines,
		tenantID: tenant.ID,
	}
}

func (f *receiveFixture) filter() shared.TenantFilter {
	return shared.ScopedTo(f.tenantID)
}

func (f *receiveFixture) createOrder(t *testing.T) *procurement.PurchaseOrder {
	t.Helper()

	supplier, err := partner.NewSupplier(f.tenantID, "Glazing Supplies")
	require.NoError(t, err)
	require.NoError(t, f.db.Create(supplier).Error)

	order := &procurement.PurchaseOrder{
		BaseEntity: shared.NewBaseEntity(),
		TenantID:   f.tenantID,
		SupplierID: supplier.ID,
		Status:     procurement.PurchaseOrderStatusSent,
		OrderDate:  time.Now(),
	}
	require.NoError(t, f.orders.Create(context.Background(), order))
	return order
}

func (f *receiveFixture) addLine(t *testing.T, orderID uuid.UUID, quantity int64, inventoryItemID *uuid.UUID) *procurement.PurchaseOrderItem {
	t.Helper()

	line := &procurement.PurchaseOrderItem{
		TenantEntity:    shared.NewTenantEntity(f.tenantID),
		PurchaseOrderID: orderID,
		InventoryItemID: inventoryItemID,
		Description:     "Toughened glass",
		Quantity:        decimal.NewFromInt(quantity),
	}
	require.NoError(t, f.db.Create(line).Error)
	return line
}

func (f *receiveFixture) createItem(t *testing.T, sku string, opening int64) *inventory.InventoryItem {
	t.Helper()

	item, err := inventory.NewInventoryItem(f.tenantID, sku, "Stocked "+sku, decimal.NewFromInt(opening))
	require.NoError(t, err)
	require.NoError(t, f.db.Create(item).Error)
	return item
}

func (f *receiveFixture) orderStatus(t *testing.T, orderID uuid.UUID) procurement.PurchaseOrderStatus {
	t.Helper()

	order, err := f.orders.FindByID(context.Background(), orderID, f.filter())
	require.NoError(t, err)
	return order.Status
}

func TestReceivePartialThenFull(t *testing.T) {
	f := newReceiveFixture(t)
	ctx := context.Background()

	item := f.createItem(t, "GLASS-6", 0)
	order := f.createOrder(t)
	line := f.addLine(t, order.ID, 10, &item.ID)

	updated, err := f.service.Receive(ctx, ReceiveInput{
		TenantID:            f.tenantID,
		PurchaseOrderItemID: line.ID,
		Quantity:            decimal.NewFromInt(4),
		Reference:           "DELIVERY-1",
	})
	require.NoError(t, err)
	assert.True(t, updated.ReceivedQuantity.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, procurement.PurchaseOrderStatusPartiallyReceived, f.orderStatus(t, order.ID))

	// The delivery lands in the stock ledger
	stocked, err := f.items.FindByID(ctx, item.ID, f.filter())
	require.NoError(t, err)
	require.NotNil(t, stocked.CurrentStock)
	assert.True(t, stocked.CurrentStock.Equal(decimal.NewFromInt(4)))

	ledgerRows, err := persistence.NewGormInventoryTransactionRepository(f.db).FindByItem(ctx, item.ID, f.filter())
	require.NoError(t, err)
	require.Len(t, ledgerRows, 1)
	assert.Equal(t, inventory.TransactionTypeIncoming, ledgerRows[0].Type)
	assert.Equal(t, "DELIVERY-1", ledgerRows[0].Reference)
	require.NotNil(t, ledgerRows[0].PurchaseOrderID)
	assert.Equal(t, order.ID, *ledgerRows[0].PurchaseOrderID)

	_, err = f.service.Receive(ctx, ReceiveInput{
		TenantID:            f.tenantID,
		PurchaseOrderItemID: line.ID,
		Quantity:            decimal.NewFromInt(6),
	})
	require.NoError(t, err)
	assert.Equal(t, procurement.PurchaseOrderStatusReceived, f.orderStatus(t, order.ID))

	stocked, err = f.items.FindByID(ctx, item.ID, f.filter())
	require.NoError(t, err)
	assert.True(t, stocked.CurrentStock.Equal(decimal.NewFromInt(10)))

	// Reference falls back to the order number when none is given
	ledgerRows, err = persistence.NewGormInventoryTransactionRepository(f.db).FindByItem(ctx, item.ID, f.filter())
	require.NoError(t, err)
	require.Len(t, ledgerRows, 2)
	references := []string{ledgerRows[0].Reference, ledgerRows[1].Reference}
	assert.Contains(t, references, order.PONumber)
}

func TestReceiveOverDeliveryRefused(t *testing.T) {
	f := newReceiveFixture(t)
	ctx := context.Background()

	order := f.createOrder(t)
	line := f.addLine(t, order.ID, 5, nil)

	_, err := f.service.Receive(ctx, ReceiveInput{
		TenantID:            f.tenantID,
		PurchaseOrderItemID: line.ID,
		Quantity:            decimal.NewFromInt(6),
	})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)

	reloaded, err := f.lines.FindByID(ctx, line.ID, f.filter())
	require.NoError(t, err)
	assert.True(t, reloaded.ReceivedQuantity.IsZero())
	assert.Equal(t, procurement.PurchaseOrderStatusSent, f.orderStatus(t, order.ID))
}

func TestReceiveCancelledOrderRefused(t *testing.T) {
	f := newReceiveFixture(t)
	ctx := context.Background()

	order := f.createOrder(t)
	line := f.addLine(t, order.ID, 5, nil)
	_, err := f.orders.Update(ctx, order.ID,
		map[string]any{"status": string(procurement.PurchaseOrderStatusCancelled)}, f.filter())
	require.NoError(t, err)

	_, err = f.service.Receive(ctx, ReceiveInput{
		TenantID:            f.tenantID,
		PurchaseOrderItemID: line.ID,
		Quantity:            decimal.NewFromInt(1),
	})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestReceiveNonInventoryLineSkipsLedger(t *testing.T) {
	f := newReceiveFixture(t)
	ctx := context.Background()

	order := f.createOrder(t)
	line := f.addLine(t, order.ID, 3, nil)

	updated, err := f.service.Receive(ctx, ReceiveInput{
		TenantID:            f.tenantID,
		PurchaseOrderItemID: line.ID,
		Quantity:            decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	assert.True(t, updated.ReceivedQuantity.Equal(decimal.NewFromInt(3)))

	var ledgerCount int64
	require.NoError(t, f.db.Model(&inventory.InventoryTransaction{}).Count(&ledgerCount).Error)
	assert.Zero(t, ledgerCount)
}

func TestReceiveValidation(t *testing.T) {
	f := newReceiveFixture(t)
	ctx := context.Background()

	order := f.createOrder(t)
	line := f.addLine(t, order.ID, 5, nil)

	t.Run("non_positive_quantity", func(t *testing.T) {
		_, err := f.service.Receive(ctx, ReceiveInput{
			TenantID:            f.tenantID,
			PurchaseOrderItemID: line.ID,
			Quantity:            decimal.NewFromInt(-1),
		})
		require.Error(t, err)
	})

	t.Run("unknown_line", func(t *testing.T) {
		_, err := f.service.Receive(ctx, ReceiveInput{
			TenantID:            f.tenantID,
			PurchaseOrderItemID: uuid.New(),
			Quantity:            decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("foreign_line_looks_missing", func(t *testing.T) {
		other, err := identity.NewTenant("T"+uuid.NewString()[:8], "Other Tenant")
		require.NoError(t, err)
		require.NoError(t, f.db.Create(other).Error)

		_, err = f.service.Receive(ctx, ReceiveInput{
			TenantID:            other.ID,
			PurchaseOrderItemID: line.ID,
			Quantity:            decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
