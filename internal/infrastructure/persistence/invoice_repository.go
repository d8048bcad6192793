package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/billing"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	entityStore[billing.Invoice]
	logger *zap.Logger
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB, logger *zap.Logger) *GormInvoiceRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormInvoiceRepository{
		entityStore: entityStore[billing.Invoice]{db: db},
		logger:      logger,
	}
}

func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*billing.Invoice, error) {
	return r.findByID(ctx, id, filter)
}

func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]billing.Invoice, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of invoices ordered by a whitelisted column
func (r *GormInvoiceRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[billing.Invoice], error) {
	return r.findPage(ctx, query, filter, InvoiceSortFields)
}

// FindByNumber finds an invoice by its human-facing number
func (r *GormInvoiceRepository) FindByNumber(ctx context.Context, invoiceNumber string, filter shared.TenantFilter) (*billing.Invoice, error) {
	return r.firstWhere(ctx, filter, "invoice_number = ?", strings.ToUpper(strings.TrimSpace(invoiceNumber)))
}

// FindByProject lists the invoices raised against a project
func (r *GormInvoiceRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]billing.Invoice, error) {
	return r.findWhere(ctx, filter, "project_id = ?", projectID)
}

// FindByQuote lists the invoices generated from a quote
func (r *GormInvoiceRepository) FindByQuote(ctx context.Context, quoteID uuid.UUID, filter shared.TenantFilter) ([]billing.Invoice, error) {
	return r.findWhere(ctx, filter, "quote_id = ?", quoteID)
}

// FindByDateRange lists invoices issued inside [from, to]. Storage errors
// are logged and degrade to an empty slice for the reporting pages.
func (r *GormInvoiceRepository) FindByDateRange(ctx context.Context, from, to time.Time, filter shared.TenantFilter) []billing.Invoice {
	var invoices []billing.Invoice
	err := r.scoped(ctx, filter).
		Where("issue_date >= ? AND issue_date <= ?", from, to).
		Order("issue_date ASC").
		Find(&invoices).Error
	if err != nil {
		r.logger.Warn("invoice date-range query failed",
			zap.Time("from", from),
			zap.Time("to", to),
			zap.Error(err))
		return []billing.Invoice{}
	}
	return invoices
}

// Create inserts the invoice and assigns its number, retrying on a lost
// race against the (tenant_id, invoice_number) unique index.
func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *billing.Invoice) error {
	if invoice.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	db := r.db.WithContext(ctx)
	return createWithGeneratedNumber(
		func() (string, error) {
			return nextDocumentNumber(db, &billing.Invoice{}, "invoice_number", invoiceNumberPrefix, invoice.TenantID, time.Now())
		},
		func(number string) { invoice.InvoiceNumber = number },
		func() error { return db.Create(invoice).Error },
	)
}

func (r *GormInvoiceRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*billing.Invoice, error) {
	return r.update(ctx, id, patch, filter)
}

func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

func (r *GormInvoiceRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ billing.InvoiceRepository = (*GormInvoiceRepository)(nil)

// GormInvoiceItemRepository implements InvoiceItemRepository using GORM
type GormInvoiceItemRepository struct {
	entityStore[billing.InvoiceItem]
}

// NewGormInvoiceItemRepository creates a new GormInvoiceItemRepository
func NewGormInvoiceItemRepository(db *gorm.DB) *GormInvoiceItemRepository {
	return &GormInvoiceItemRepository{entityStore[billing.InvoiceItem]{db: db}}
}

func (r *GormInvoiceItemRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*billing.InvoiceItem, error) {
	return r.findByID(ctx, id, filter)
}

func (r *GormInvoiceItemRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]billing.InvoiceItem, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of invoice items ordered by a whitelisted column
func (r *GormInvoiceItemRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[billing.InvoiceItem], error) {
	return r.findPage(ctx, query, filter, CommonSortFields)
}

// FindByInvoice lists the line items of an invoice
func (r *GormInvoiceItemRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID, filter shared.TenantFilter) ([]billing.InvoiceItem, error) {
	return r.findWhere(ctx, filter, "invoice_id = ?", invoiceID)
}

// DeleteByInvoice removes every line item of an invoice
func (r *GormInvoiceItemRepository) DeleteByInvoice(ctx context.Context, invoiceID uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteWhere(ctx, filter, "invoice_id = ?", invoiceID)
}

func (r *GormInvoiceItemRepository) Create(ctx context.Context, item *billing.InvoiceItem) error {
	if item.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, item)
}

func (r *GormInvoiceItemRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*billing.InvoiceItem, error) {
	return r.update(ctx, id, patch, filter)
}

func (r *GormInvoiceItemRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

func (r *GormInvoiceItemRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormInvoiceItemRepository implements InvoiceItemRepository
var _ billing.InvoiceItemRepository = (*GormInvoiceItemRepository)(nil)
