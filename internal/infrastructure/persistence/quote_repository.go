package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/billing"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormQuoteRepository implements QuoteRepository using GORM
type GormQuoteRepository struct {
	entityStore[billing.Quote]
}

// NewGormQuoteRepository creates a new GormQuoteRepository
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{entityStore[billing.Quote]{db: db}}
}

func (r *GormQuoteRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*billing.Quote, error) {
	return r.findByID(ctx, id, filter)
}

func (r *GormQuoteRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]billing.Quote, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of quotes ordered by a whitelisted column
func (r *GormQuoteRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[billing.Quote], error) {
	return r.findPage(ctx, query, filter, QuoteSortFields)
}

// FindByNumber finds a quote by its human-facing number
func (r *GormQuoteRepository) FindByNumber(ctx context.Context, quoteNumber string, filter shared.TenantFilter) (*billing.Quote, error) {
	return r.firstWhere(ctx, filter, "quote_number = ?", strings.ToUpper(strings.TrimSpace(quoteNumber)))
}

// FindByProject lists the quotes raised against a project
func (r *GormQuoteRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) ([]billing.Quote, error) {
	return r.findWhere(ctx, filter, "project_id = ?", projectID)
}

// FindByStatus lists quotes in a given lifecycle state
func (r *GormQuoteRepository) FindByStatus(ctx context.Context, status billing.QuoteStatus, filter shared.TenantFilter) ([]billing.Quote, error) {
	return r.findWhere(ctx, filter, "status = ?", status)
}

// Create inserts the quote and assigns its number. The unique index on
// (tenant_id, quote_number) arbitrates concurrent creates; on a duplicate
// the number is regenerated and the insert retried.
func (r *GormQuoteRepository) Create(ctx context.Context, quote *billing.Quote) error {
	if quote.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	db := r.db.WithContext(ctx)
	return createWithGeneratedNumber(
		func() (string, error) {
			return nextDocumentNumber(db, &billing.Quote{}, "quote_number", quoteNumberPrefix, quote.TenantID, time.Now())
		},
		func(number string) { quote.QuoteNumber = number },
		func() error { return db.Create(quote).Error },
	)
}

func (r *GormQuoteRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*billing.Quote, error) {
	return r.update(ctx, id, patch, filter)
}

// Delete removes the quote row only. The guarded delete that also clears
// line items and attachments lives in the quote service.
func (r *GormQuoteRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

func (r *GormQuoteRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormQuoteRepository implements QuoteRepository
var _ billing.QuoteRepository = (*GormQuoteRepository)(nil)

// GormQuoteItemRepository implements QuoteItemRepository using GORM
type GormQuoteItemRepository struct {
	entityStore[billing.QuoteItem]
}

// NewGormQuoteItemRepository creates a new GormQuoteItemRepository
func NewGormQuoteItemRepository(db *gorm.DB) *GormQuoteItemRepository {
	return &GormQuoteItemRepository{entityStore[billing.QuoteItem]{db: db}}
}

func (r *GormQuoteItemRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*billing.QuoteItem, error) {
	return r.findByID(ctx, id, filter)
}

func (r *GormQuoteItemRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]billing.QuoteItem, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of quote items ordered by a whitelisted column
func (r *GormQuoteItemRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[billing.QuoteItem], error) {
	return r.findPage(ctx, query, filter, CommonSortFields)
}

// FindByQuote lists the line items of a quote
func (r *GormQuoteItemRepository) FindByQuote(ctx context.Context, quoteID uuid.UUID, filter shared.TenantFilter) ([]billing.QuoteItem, error) {
	return r.findWhere(ctx, filter, "quote_id = ?", quoteID)
}

// DeleteByQuote removes every line item of a quote
func (r *GormQuoteItemRepository) DeleteByQuote(ctx context.Context, quoteID uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteWhere(ctx, filter, "quote_id = ?", quoteID)
}

func (r *GormQuoteItemRepository) Create(ctx context.Context, item *billing.QuoteItem) error {
	if item.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, item)
}

func (r *GormQuoteItemRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*billing.QuoteItem, error) {
	return r.update(ctx, id, patch, filter)
}

func (r *GormQuoteItemRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

func (r *GormQuoteItemRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormQuoteItemRepository implements QuoteItemRepository
var _ billing.QuoteItemRepository = (*GormQuoteItemRepository)(nil)
