// Package procurement orchestrates the purchase order receiving flow,
// tying supplier deliveries into the stock ledger.
package procurement

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appinventory "github.com/AutomationProtocolsService/business-management-platform-sub000/internal/application/inventory"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/inventory"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/procurement"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
)

// ReceiveInput records a delivery against one purchase order line
type ReceiveInput struct {
	TenantID            uuid.UUID       `validate:"required"`
	PurchaseOrderItemID uuid.UUID       `validate:"required"`
	Quantity            decimal.Decimal `validate:"required"`
	Reference           string          `validate:"max=128"`
	ReceivedAt          time.Time
}

// ReceiveService processes deliveries against purchase orders. Each
// receipt bumps the line's received quantity, writes an incoming ledger
// entry when the line maps to an inventory item, and moves the order's
// status along its lifecycle.
type ReceiveService struct {
	orders   procurement.PurchaseOrderRepository
	lines    procurement.PurchaseOrderItemRepository
	ledger   *appinventory.LedgerService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewReceiveService creates a new ReceiveService
func NewReceiveService(orders procurement.PurchaseOrderRepository, lines procurement.PurchaseOrderItemRepository, ledger *appinventory.LedgerService, logger *zap.Logger) *ReceiveService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReceiveService{
		orders:   orders,
		lines:    lines,
		ledger:   ledger,
		validate: validator.New(),
		logger:   logger,
	}
}

// Receive books a delivered quantity against a purchase order line. The
// quantity must be positive and no greater than the line's outstanding
// amount. Over-delivery is refused rather than clamped.
func (s *ReceiveService) Receive(ctx context.Context, input ReceiveInput) (*procurement.PurchaseOrderItem, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}
	if !input.Quantity.IsPositive() {
		return nil, shared.NewValidationError("received quantity must be positive")
	}

	filter := shared.ScopedTo(input.TenantID)
	line, err := s.lines.FindByID(ctx, input.PurchaseOrderItemID, filter)
	if err != nil {
		return nil, err
	}
	if input.Quantity.GreaterThan(line.Outstanding()) {
		return nil, shared.NewConflictError("received quantity exceeds the outstanding amount on this line")
	}

	order, err := s.orders.FindByID(ctx, line.PurchaseOrderID, filter)
	if err != nil {
		return nil, err
	}
	if order.Status == procurement.PurchaseOrderStatusCancelled {
		return nil, shared.NewConflictError("purchase order has been cancelled")
	}

	newReceived := line.ReceivedQuantity.Add(input.Quantity)
	updated, err := s.lines.Update(ctx, line.ID,
		map[string]any{"received_quantity": newReceived}, filter)
	if err != nil {
		return nil, err
	}

	if line.InventoryItemID != nil {
		orderRef := order.ID
		reference := input.Reference
		if reference == "" {
			reference = order.PONumber
		}
		_, err = s.ledger.RecordTransaction(ctx, appinventory.RecordTransactionInput{
			TenantID:        input.TenantID,
			InventoryItemID: *line.InventoryItemID,
			Type:            string(inventory.TransactionTypeIncoming),
			Quantity:        input.Quantity,
			ProjectID:       order.ProjectID,
			PurchaseOrderID: &orderRef,
			Reference:       reference,
			OccurredAt:      input.ReceivedAt,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := s.refreshOrderStatus(ctx, order, filter); err != nil {
		return nil, err
	}

	s.logger.Info("purchase order line received",
		zap.String("po_number", order.PONumber),
		zap.String("line_id", line.ID.String()),
		zap.String("quantity", input.Quantity.String()))
	return updated, nil
}

// refreshOrderStatus recomputes the order status from its lines: all
// lines fully received means received, any received quantity at all
// means partially received.
func (s *ReceiveService) refreshOrderStatus(ctx context.Context, order *procurement.PurchaseOrder, filter shared.TenantFilter) error {
	lines, err := s.lines.FindByPurchaseOrder(ctx, order.ID, filter)
	if err != nil {
		return err
	}

	allFull := len(lines) > 0
	anyReceived := false
	for i := range lines {
		if !lines[i].FullyReceived() {
			allFull = false
		}
		if lines[i].ReceivedQuantity.IsPositive() {
			anyReceived = true
		}
	}

	next := order.Status
	switch {
	case allFull:
		next = procurement.PurchaseOrderStatusReceived
	case anyReceived:
		next = procurement.PurchaseOrderStatusPartiallyReceived
	}
	if next == order.Status {
		return nil
	}
	_, err = s.orders.Update(ctx, order.ID, map[string]any{"status": string(next)}, filter)
	return err
}
