package inventory

import (
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of an inventory movement
type TransactionType string

const (
	// TransactionTypeIncoming adds stock (deliveries, returns to store)
	TransactionTypeIncoming TransactionType = "incoming"
	// TransactionTypeOutgoing removes stock (issues to projects, waste)
	TransactionTypeOutgoing TransactionType = "outgoing"
)

// IsValid returns true if the transaction type is known
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncoming || t == TransactionTypeOutgoing
}

// InventoryTransaction is one signed entry in the stock ledger. New rows
// always carry a tenant; TenantID is nullable only because historical
// rows predate the tenant column, and tenant-filtered queries fall back
// to the owning inventory item for those.
type InventoryTransaction struct {
	shared.BaseEntity
	TenantID        *uuid.UUID      `gorm:"type:uuid;index"`
	InventoryItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProjectID       *uuid.UUID      `gorm:"type:uuid;index"`
	PurchaseOrderID *uuid.UUID      `gorm:"type:uuid;index"`
	Type            TransactionType `gorm:"size:16;not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Reference       string          `gorm:"size:128"`
	Notes           string          `gorm:"size:1024"`
	OccurredAt      time.Time       `gorm:"not null;index"`
}

// TableName returns the database table name
func (InventoryTransaction) TableName() string {
	return "inventory_transactions"
}

// SignedQuantity returns the quantity with its ledger sign: positive for
// incoming movements, negative for outgoing.
func (t *InventoryTransaction) SignedQuantity() decimal.Decimal {
	if t.Type == TransactionTypeOutgoing {
		return t.Quantity.Neg()
	}
	return t.Quantity
}

// SignedQuantityFor applies the ledger sign convention to an arbitrary
// type and quantity pair.
func SignedQuantityFor(txType TransactionType, quantity decimal.Decimal) decimal.Decimal {
	if txType == TransactionTypeOutgoing {
		return quantity.Neg()
	}
	return quantity
}

// NewInventoryTransaction creates a ledger entry. Quantity must be
// strictly positive; direction is carried by Type, not by sign.
func NewInventoryTransaction(tenantID, itemID uuid.UUID, txType TransactionType, quantity decimal.Decimal) (*InventoryTransaction, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrTenantRequired
	}
	if itemID == uuid.Nil {
		return nil, shared.NewValidationError("inventory item id is required")
	}
	if !txType.IsValid() {
		return nil, shared.NewValidationError("transaction type must be incoming or outgoing")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewValidationError("quantity must be positive")
	}
	tid := tenantID
	return &InventoryTransaction{
		BaseEntity:      shared.NewBaseEntity(),
		TenantID:        &tid,
		InventoryItemID: itemID,
		Type:            txType,
		Quantity:        quantity,
		OccurredAt:      time.Now(),
	}, nil
}
