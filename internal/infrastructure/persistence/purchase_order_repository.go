package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/procurement"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	entityStore[procurement.PurchaseOrder]
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{entityStore[procurement.PurchaseOrder]{db: db}}
}

func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*procurement.PurchaseOrder, error) {
	return r.findByID(ctx, id, filter)
}

func (r *GormPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]procurement.PurchaseOrder, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of purchase orders ordered by a whitelisted column
func (r *GormPurchaseOrderRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[procurement.PurchaseOrder], error) {
	return r.findPage(ctx, query, filter, PurchaseOrderSortFields)
}

// FindByNumber finds a purchase order by its human-facing number
func (r *GormPurchaseOrderRepository) FindByNumber(ctx context.Context, poNumber string, filter shared.TenantFilter) (*procurement.PurchaseOrder, error) {
	return r.firstWhere(ctx, filter, "po_number = ?", strings.ToUpper(strings.TrimSpace(poNumber)))
}

// FindByProject lists the purchase orders raised for a project
func (r *GormPurchaseOrderRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]procurement.PurchaseOrder, error) {
	return r.findWhere(ctx, filter, "project_id = ?", projectID)
}

// FindBySupplier lists the purchase orders placed with a supplier
func (r *GormPurchaseOrderRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.TenantFilter) ([]procurement.PurchaseOrder, error) {
	return r.findWhere(ctx, filter, "supplier_id = ?", supplierID)
}

// FindByStatus lists purchase orders in a given lifecycle state
func (r *GormPurchaseOrderRepository) FindByStatus(ctx context.Context, status procurement.PurchaseOrderStatus, filter shared.TenantFilter) ([]procurement.PurchaseOrder, error) {
	return r.findWhere(ctx, filter, "status = ?", status)
}

// Create inserts the purchase order and assigns its number, retrying on a
// lost race against the (tenant_id, po_number) unique index.
func (r *GormPurchaseOrderRepository) Create(ctx context.Context, po *procurement.PurchaseOrder) error {
	if po.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	db := r.db.WithContext(ctx)
	return createWithGeneratedNumber(
		func() (string, error) {
			return nextDocumentNumber(db, &procurement.PurchaseOrder{}, "po_number", purchaseOrderNumberPrefix, po.TenantID, time.Now())
		},
		func(number string) { po.PONumber = number },
		func() error { return db.Create(po).Error },
	)
}

func (r *GormPurchaseOrderRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*procurement.PurchaseOrder, error) {
	return r.update(ctx, id, patch, filter)
}

func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

func (r *GormPurchaseOrderRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormPurchaseOrderRepository implements PurchaseOrderRepository
var _ procurement.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)

// GormPurchaseOrderItemRepository implements PurchaseOrderItemRepository
// using GORM
type GormPurchaseOrderItemRepository struct {
	entityStore[procurement.PurchaseOrderItem]
}

// NewGormPurchaseOrderItemRepository creates a new GormPurchaseOrderItemRepository
func NewGormPurchaseOrderItemRepository(db *gorm.DB) *GormPurchaseOrderItemRepository {
	return &GormPurchaseOrderItemRepository{entityStore[procurement.PurchaseOrderItem]{db: db}}
}

func (r *GormPurchaseOrderItemRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*procurement.PurchaseOrderItem, error) {
	return r.findByID(ctx, id, filter)
}

func (r *GormPurchaseOrderItemRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]procurement.PurchaseOrderItem, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of purchase order lines ordered by a
// whitelisted column
func (r *GormPurchaseOrderItemRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[procurement.PurchaseOrderItem], error) {
	return r.findPage(ctx, query, filter, CommonSortFields)
}

// FindByPurchaseOrder lists the lines of a purchase order
func (r *GormPurchaseOrderItemRepository) FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID, filter shared.TenantFilter) ([]procurement.PurchaseOrderItem, error) {
	return r.findWhere(ctx, filter, "purchase_order_id = ?", purchaseOrderID)
}

// DeleteByPurchaseOrder removes every line of a purchase order
func (r *GormPurchaseOrderItemRepository) DeleteByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteWhere(ctx, filter, "purchase_order_id = ?", purchaseOrderID)
}

func (r *GormPurchaseOrderItemRepository) Create(ctx context.Context, item *procurement.PurchaseOrderItem) error {
	if item.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, item)
}

func (r *GormPurchaseOrderItemRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*procurement.PurchaseOrderItem, error) {
	return r.update(ctx, id, patch, filter)
}

func (r *GormPurchaseOrderItemRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

func (r *GormPurchaseOrderItemRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormPurchaseOrderItemRepository implements PurchaseOrderItemRepository
var _ procurement.PurchaseOrderItemRepository = (*GormPurchaseOrderItemRepository)(nil)
