// Package inventory orchestrates the stock ledger: every mutation of an
// inventory transaction adjusts the derived stock of its item.
package inventory

import (
	"context"
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/inventory"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RecordTransactionInput carries a new ledger entry
type RecordTransactionInput struct {
	TenantID        uuid.UUID       `validate:"required"`
	InventoryItemID uuid.UUID       `validate:"required"`
	Type            string          `validate:"required,oneof=incoming outgoing"`
	Quantity        decimal.Decimal `validate:"required"`
	ProjectID       *uuid.UUID
	PurchaseOrderID *uuid.UUID
	Reference       string `validate:"max=128"`
	Notes           string `validate:"max=1024"`
	OccurredAt      time.Time
}

// UpdateTransactionInput carries the mutable fields of a ledger entry.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	Type      *string `validate:"omitempty,oneof=incoming outgoing"`
	Quantity  *decimal.Decimal
	Reference *string `validate:"omitempty,max=128"`
	Notes     *string `validate:"omitempty,max=1024"`
}

// LedgerService keeps InventoryItem.CurrentStock consistent with the
// transaction history. The stock adjustment itself is a single atomic
// UPDATE in the repository, so interleaved ledger writes cannot lose
// increments; what the service owns is computing the right delta for
// each mutation.
type LedgerService struct {
	items    inventory.InventoryItemRepository
	txs      inventory.InventoryTransactionRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(items inventory.InventoryItemRepository, txs inventory.InventoryTransactionRepository, logger *zap.Logger) *LedgerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerService{
		items:    items,
		txs:      txs,
		validate: validator.New(),
		logger:   logger,
	}
}

// RecordTransaction inserts a ledger entry and applies its signed
// quantity to the item's stock. Untracked items accept the entry but
// keep a nil stock.
func (s *LedgerService) RecordTransaction(ctx context.Context, input RecordTransactionInput) (*inventory.InventoryTransaction, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}

	filter := shared.ScopedTo(input.TenantID)
	if _, err := s.items.FindByID(ctx, input.InventoryItemID, filter); err != nil {
		return nil, err
	}

	tx, err := inventory.NewInventoryTransaction(input.TenantID, input.InventoryItemID, inventory.TransactionType(input.Type), input.Quantity)
	if err != nil {
		return nil, err
	}
	tx.ProjectID = input.ProjectID
	tx.PurchaseOrderID = input.PurchaseOrderID
	tx.Reference = input.Reference
	tx.Notes = input.Notes
	if !input.OccurredAt.IsZero() {
		tx.OccurredAt = input.OccurredAt
	}

	if err := s.txs.Create(ctx, tx); err != nil {
		return nil, err
	}
	if err := s.items.AdjustStock(ctx, tx.InventoryItemID, tx.SignedQuantity(), filter); err != nil {
		return nil, err
	}
	return tx, nil
}

// UpdateTransaction patches a ledger entry and re-balances the item by
// reversing the old signed quantity and applying the new one. The delta
// comes from the pre-update snapshot; computing it from the stored row
// after the patch would double-apply the change.
func (s *LedgerService) UpdateTransaction(ctx context.Context, id uuid.UUID, input UpdateTransactionInput, filter shared.TenantFilter) (*inventory.InventoryTransaction, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}

	before, err := s.txs.FindByID(ctx, id, filter)
	if err != nil {
		return nil, err
	}

	patch := map[string]any{}
	newType := before.Type
	newQuantity := before.Quantity
	if input.Type != nil {
		newType = inventory.TransactionType(*input.Type)
		patch["type"] = *input.Type
	}
	if input.Quantity != nil {
		if !input.Quantity.IsPositive() {
			return nil, shared.NewValidationError("quantity must be positive")
		}
		newQuantity = *input.Quantity
		patch["quantity"] = *input.Quantity
	}
	if input.Reference != nil {
		patch["reference"] = *input.Reference
	}
	if input.Notes != nil {
		patch["notes"] = *input.Notes
	}

	after, err := s.txs.Update(ctx, id, patch, filter)
	if err != nil {
		return nil, err
	}

	delta := before.SignedQuantity().Neg().
		Add(inventory.SignedQuantityFor(newType, newQuantity))
	if !delta.IsZero() {
		if err := s.items.AdjustStock(ctx, before.InventoryItemID, delta, filter); err != nil {
			return nil, err
		}
	}
	return after, nil
}

// DeleteTransaction removes a ledger entry and reverses its effect on
// the item's stock
func (s *LedgerService) DeleteTransaction(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	tx, err := s.txs.FindByID(ctx, id, filter)
	if err != nil {
		return err
	}
	if err := s.txs.Delete(ctx, id, filter); err != nil {
		return err
	}
	return s.items.AdjustStock(ctx, tx.InventoryItemID, tx.SignedQuantity().Neg(), filter)
}

// ItemHistory lists the ledger entries of one item, newest first
func (s *LedgerService) ItemHistory(ctx context.Context, itemID uuid.UUID, filter shared.TenantFilter) ([]inventory.InventoryTransaction, error) {
	return s.txs.FindByItem(ctx, itemID, filter)
}

// LowStockItems lists items at or below their reorder threshold,
// evaluated live against the derived stock
func (s *LedgerService) LowStockItems(ctx context.Context, filter shared.TenantFilter) ([]inventory.InventoryItem, error) {
	return s.items.FindLowStock(ctx, filter)
}
