package billing

import (
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle status of an invoice
type InvoiceStatus string

const (
	// InvoiceStatusDraft is an invoice not yet issued
	InvoiceStatusDraft InvoiceStatus = "draft"
	// InvoiceStatusIssued is an invoice sent to the customer
	InvoiceStatusIssued InvoiceStatus = "issued"
	// InvoiceStatusPaid is a settled invoice
	InvoiceStatusPaid InvoiceStatus = "paid"
	// InvoiceStatusOverdue is an unpaid invoice past its due date
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	// InvoiceStatusVoid is a cancelled invoice
	InvoiceStatusVoid InvoiceStatus = "void"
)

// Invoice bills a customer for a project. QuoteID links back to the quote
// the invoice was generated from; the link doubles as a deletion guard on
// the quote even when the quote's status was never updated.
type Invoice struct {
	shared.BaseEntity
	TenantID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_tenant_number"`
	ProjectID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	QuoteID       *uuid.UUID      `gorm:"type:uuid;index"`
	InvoiceNumber string          `gorm:"size:40;not null;uniqueIndex:idx_invoices_tenant_number"`
	Status        InvoiceStatus   `gorm:"size:20;not null;default:draft"`
	IssueDate     time.Time       `gorm:"not null"`
	DueDate       *time.Time      `gorm:""`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PaidAt        *time.Time      `gorm:""`
	Notes         string          `gorm:"size:2048"`
}

// TableName returns the database table name
func (Invoice) TableName() string {
	return "invoices"
}

// GetTenantID returns the owning tenant ID
func (i *Invoice) GetTenantID() uuid.UUID {
	return i.TenantID
}

// InvoiceItem is a single line on an invoice.
type InvoiceItem struct {
	shared.TenantEntity
	InvoiceID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CatalogItemID *uuid.UUID      `gorm:"type:uuid"`
	Description   string          `gorm:"size:1024;not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(12,3);not null;default:1"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName returns the database table name
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// LineTotal computes quantity times unit price
func (i *InvoiceItem) LineTotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}
