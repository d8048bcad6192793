package billing

import (
	"context"
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// QuoteRepository persists quotes. Create assigns the quote number.
type QuoteRepository interface {
	shared.Repository[Quote]
	FindByNumber(ctx context.Context, quoteNumber string, filter shared.TenantFilter) (*Quote, error)
	FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]Quote, error)
	FindByStatus(ctx context.Context, status QuoteStatus, filter shared.TenantFilter) ([]Quote, error)
}

// QuoteItemRepository persists quote line items
type QuoteItemRepository interface {
	shared.Repository[QuoteItem]
	FindByQuote(ctx context.Context, quoteID uuid.UUID, filter shared.TenantFilter) ([]QuoteItem, error)
	DeleteByQuote(ctx context.Context, quoteID uuid.UUID, filter shared.TenantFilter) error
}

// InvoiceRepository persists invoices. Create assigns the invoice number.
// FindByDateRange deliberately degrades to an empty result on storage
// failure.
type InvoiceRepository interface {
	shared.Repository[Invoice]
	FindByNumber(ctx context.Context, invoiceNumber string, filter shared.TenantFilter) (*Invoice, error)
	FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]Invoice, error)
	FindByQuote(ctx context.Context, quoteID uuid.UUID, filter shared.TenantFilter) ([]Invoice, error)
	FindByDateRange(ctx context.Context, from, to time.Time, filter shared.TenantFilter) []Invoice
}

// InvoiceItemRepository persists invoice line items
type InvoiceItemRepository interface {
	shared.Repository[InvoiceItem]
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID, filter shared.TenantFilter) ([]InvoiceItem, error)
	DeleteByInvoice(ctx context.Context, invoiceID uuid.UUID, filter shared.TenantFilter) error
}

// CatalogItemRepository persists catalog items
type CatalogItemRepository interface {
	shared.Repository[CatalogItem]
	FindByCategory(ctx context.Context, category string, filter shared.TenantFilter) ([]CatalogItem, error)
	FindActive(ctx context.Context, filter shared.TenantFilter) ([]CatalogItem, error)
}
