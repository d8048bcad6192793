package procurement

import (
	"context"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// PurchaseOrderRepository persists purchase orders. Create assigns the PO
// number; concurrent creates within the same tenant and year must never
// produce duplicate numbers.
type PurchaseOrderRepository interface {
	shared.Repository[PurchaseOrder]
	FindByNumber(ctx context.Context, poNumber string, filter shared.TenantFilter) (*PurchaseOrder, error)
	FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]PurchaseOrder, error)
	FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.TenantFilter) ([]PurchaseOrder, error)
	FindByStatus(ctx context.Context, status PurchaseOrderStatus, filter shared.TenantFilter) ([]PurchaseOrder, error)
}

// PurchaseOrderItemRepository persists purchase order lines
type PurchaseOrderItemRepository interface {
	shared.Repository[PurchaseOrderItem]
	FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID, filter shared.TenantFilter) ([]PurchaseOrderItem, error)
	DeleteByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID, filter shared.TenantFilter) error
}
