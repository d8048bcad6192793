// Package procurement holds purchase orders raised against suppliers.
package procurement

import (
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the lifecycle status of a purchase order
type PurchaseOrderStatus string

const (
	// PurchaseOrderStatusDraft is an order being prepared
	PurchaseOrderStatusDraft PurchaseOrderStatus = "draft"
	// PurchaseOrderStatusSent is an order submitted to the supplier
	PurchaseOrderStatusSent PurchaseOrderStatus = "sent"
	// PurchaseOrderStatusPartiallyReceived is an order with some lines received
	PurchaseOrderStatusPartiallyReceived PurchaseOrderStatus = "partially_received"
	// PurchaseOrderStatusReceived is a fully received order
	PurchaseOrderStatusReceived PurchaseOrderStatus = "received"
	// PurchaseOrderStatusCancelled is a cancelled order
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

// PurchaseOrder is an order to a supplier, optionally tied to a project.
// TenantID shares the composite unique index with PONumber.
type PurchaseOrder struct {
	shared.BaseEntity
	TenantID     uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_purchase_orders_tenant_number"`
	SupplierID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	ProjectID    *uuid.UUID          `gorm:"type:uuid;index"`
	PONumber     string              `gorm:"size:40;not null;uniqueIndex:idx_purchase_orders_tenant_number"`
	Status       PurchaseOrderStatus `gorm:"size:24;not null;default:draft"`
	OrderDate    time.Time           `gorm:"not null"`
	ExpectedDate *time.Time          `gorm:""`
	Total        decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0"`
	Notes        string              `gorm:"size:2048"`
}

// TableName returns the database table name
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// GetTenantID returns the owning tenant ID
func (p *PurchaseOrder) GetTenantID() uuid.UUID {
	return p.TenantID
}

// PurchaseOrderItem is a single line on a purchase order. It may reference
// the inventory item it replenishes.
type PurchaseOrderItem struct {
	shared.TenantEntity
	PurchaseOrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	InventoryItemID  *uuid.UUID      `gorm:"type:uuid;index"`
	Description      string          `gorm:"size:1024;not null"`
	Quantity         decimal.Decimal `gorm:"type:decimal(12,3);not null;default:1"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ReceivedQuantity decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
}

// TableName returns the database table name
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// Outstanding returns the quantity still to be received
func (i *PurchaseOrderItem) Outstanding() decimal.Decimal {
	return i.Quantity.Sub(i.ReceivedQuantity)
}

// FullyReceived reports whether the line has been received in full
func (i *PurchaseOrderItem) FullyReceived() bool {
	return i.ReceivedQuantity.GreaterThanOrEqual(i.Quantity)
}
