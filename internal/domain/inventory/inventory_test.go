package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
)

func ptr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestSignedQuantity(t *testing.T) {
	incoming := &InventoryTransaction{Type: TransactionTypeIncoming, Quantity: decimal.NewFromInt(5)}
	assert.True(t, incoming.SignedQuantity().Equal(decimal.NewFromInt(5)))

	outgoing := &InventoryTransaction{Type: TransactionTypeOutgoing, Quantity: decimal.NewFromInt(5)}
	assert.True(t, outgoing.SignedQuantity().Equal(decimal.NewFromInt(-5)))

	assert.True(t, SignedQuantityFor(TransactionTypeOutgoing, decimal.NewFromInt(3)).Equal(decimal.NewFromInt(-3)))
	assert.True(t, SignedQuantityFor(TransactionTypeIncoming, decimal.NewFromInt(3)).Equal(decimal.NewFromInt(3)))
}

func TestNewInventoryTransaction(t *testing.T) {
	tenantID := uuid.New()
	itemID := uuid.New()

	t.Run("valid", func(t *testing.T) {
		tx, err := NewInventoryTransaction(tenantID, itemID, TransactionTypeIncoming, decimal.NewFromInt(5))
		require.NoError(t, err)
		require.NotNil(t, tx.TenantID)
		assert.Equal(t, tenantID, *tx.TenantID)
		assert.False(t, tx.OccurredAt.IsZero())
	})

	t.Run("missing_tenant", func(t *testing.T) {
		_, err := NewInventoryTransaction(uuid.Nil, itemID, TransactionTypeIncoming, decimal.NewFromInt(5))
		assert.ErrorIs(t, err, shared.ErrTenantRequired)
	})

	t.Run("missing_item", func(t *testing.T) {
		_, err := NewInventoryTransaction(tenantID, uuid.Nil, TransactionTypeIncoming, decimal.NewFromInt(5))
		assert.Error(t, err)
	})

	t.Run("bad_type", func(t *testing.T) {
		_, err := NewInventoryTransaction(tenantID, itemID, TransactionType("sideways"), decimal.NewFromInt(5))
		assert.Error(t, err)
	})

	t.Run("direction_is_not_carried_by_sign", func(t *testing.T) {
		_, err := NewInventoryTransaction(tenantID, itemID, TransactionTypeOutgoing, decimal.NewFromInt(-5))
		assert.Error(t, err)
		_, err = NewInventoryTransaction(tenantID, itemID, TransactionTypeIncoming, decimal.Zero)
		assert.Error(t, err)
	})
}

func TestLowStockThreshold(t *testing.T) {
	t.Run("prefers_reorder_point", func(t *testing.T) {
		item := &InventoryItem{ReorderPoint: ptr(5), MinimumStock: ptr(3)}
		require.NotNil(t, item.LowStockThreshold())
		assert.True(t, item.LowStockThreshold().Equal(decimal.NewFromInt(5)))
	})

	t.Run("falls_back_to_legacy_minimum", func(t *testing.T) {
		item := &InventoryItem{MinimumStock: ptr(3)}
		require.NotNil(t, item.LowStockThreshold())
		assert.True(t, item.LowStockThreshold().Equal(decimal.NewFromInt(3)))
	})

	t.Run("nil_when_unset", func(t *testing.T) {
		assert.Nil(t, (&InventoryItem{}).LowStockThreshold())
	})
}

func TestIsLowStock(t *testing.T) {
	tests := []struct {
		name      string
		stock     *decimal.Decimal
		threshold *decimal.Decimal
		want      bool
	}{
		{"below_threshold", ptr(4), ptr(5), true},
		{"at_threshold", ptr(5), ptr(5), true},
		{"above_threshold", ptr(6), ptr(5), false},
		{"untracked", nil, ptr(5), false},
		{"no_threshold", ptr(0), nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := &InventoryItem{CurrentStock: tc.stock, ReorderPoint: tc.threshold}
			assert.Equal(t, tc.want, item.IsLowStock())
		})
	}
}

func TestNewInventoryItem(t *testing.T) {
	tenantID := uuid.New()

	t.Run("normalises_sku", func(t *testing.T) {
		item, err := NewInventoryItem(tenantID, "  wid-1  ", "Widget", decimal.NewFromInt(10))
		require.NoError(t, err)
		assert.Equal(t, "WID-1", item.SKU)
		require.NotNil(t, item.CurrentStock)
		assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(10)))
	})

	t.Run("requires_sku_and_name", func(t *testing.T) {
		_, err := NewInventoryItem(tenantID, "  ", "Widget", decimal.Zero)
		assert.Error(t, err)
		_, err = NewInventoryItem(tenantID, "WID-1", " ", decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("requires_tenant", func(t *testing.T) {
		_, err := NewInventoryItem(uuid.Nil, "WID-1", "Widget", decimal.Zero)
		assert.ErrorIs(t, err, shared.ErrTenantRequired)
	})
}
