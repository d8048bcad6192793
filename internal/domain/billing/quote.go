// Package billing holds quotes, invoices and the reusable catalog items
// their line items draw from.
package billing

import (
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle status of a quote
type QuoteStatus string

const (
	// QuoteStatusDraft is a quote still being prepared
	QuoteStatusDraft QuoteStatus = "draft"
	// QuoteStatusSent is a quote delivered to the customer
	QuoteStatusSent QuoteStatus = "sent"
	// QuoteStatusAccepted is a quote the customer has committed to
	QuoteStatusAccepted QuoteStatus = "accepted"
	// QuoteStatusRejected is a quote the customer declined
	QuoteStatusRejected QuoteStatus = "rejected"
	// QuoteStatusConverted is a quote an invoice has been generated from
	QuoteStatusConverted QuoteStatus = "converted"
)

// Quote is a priced offer for a project. TenantID is declared here rather
// than through the embedded helper so it can share the composite unique
// index with QuoteNumber.
type Quote struct {
	shared.BaseEntity
	TenantID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_quotes_tenant_number"`
	ProjectID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	QuoteNumber string          `gorm:"size:40;not null;uniqueIndex:idx_quotes_tenant_number"`
	Status      QuoteStatus     `gorm:"size:20;not null;default:draft"`
	SurveyID    *uuid.UUID      `gorm:"type:uuid"`
	IssueDate   time.Time       `gorm:"not null"`
	ExpiryDate  *time.Time      `gorm:""`
	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TaxAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Notes       string          `gorm:"size:2048"`
}

// TableName returns the database table name
func (Quote) TableName() string {
	return "quotes"
}

// GetTenantID returns the owning tenant ID
func (q *Quote) GetTenantID() uuid.UUID {
	return q.TenantID
}

// QuoteItem is a single line on a quote, optionally drawn from the catalog.
type QuoteItem struct {
	shared.TenantEntity
	QuoteID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	CatalogItemID *uuid.UUID      `gorm:"type:uuid"`
	Description   string          `gorm:"size:1024;not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(12,3);not null;default:1"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName returns the database table name
func (QuoteItem) TableName() string {
	return "quote_items"
}

// LineTotal computes quantity times unit price
func (i *QuoteItem) LineTotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// Reasons a quote delete is refused. The guard evaluates its rules in
// order and reports the first that fails.
const (
	ReasonQuoteNotFound    = "Quote not found"
	ReasonQuoteConverted   = "Quote has been converted to an invoice and cannot be deleted"
	ReasonQuoteAccepted    = "Quote has been accepted by the client and cannot be deleted"
	ReasonQuoteHasInvoices = "Quote is linked to one or more invoices and cannot be deleted"
	ReasonQuoteSurveyDone  = "Quote has a completed survey and cannot be deleted"
)

// CanDeleteResult is the structured outcome of the quote deletion guard.
type CanDeleteResult struct {
	CanDelete bool   `json:"canDelete"`
	Reason    string `json:"reason,omitempty"`
}

// Deletable returns an allow result
func Deletable() CanDeleteResult {
	return CanDeleteResult{CanDelete: true}
}

// NotDeletable returns a deny result with the given reason
func NotDeletable(reason string) CanDeleteResult {
	return CanDeleteResult{CanDelete: false, Reason: reason}
}
