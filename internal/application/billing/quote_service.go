// Package billing orchestrates the quote and invoice workflows that span
// more than one repository: the guarded quote delete and the quote to
// invoice conversion.
package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/billing"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/infrastructure/persistence"
)

// QuoteService owns the quote lifecycle operations that touch several
// tables at once. It holds the database handle rather than individual
// repositories so each multi-step operation can rebuild its repositories
// on a transaction and commit or roll back as a unit.
type QuoteService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(db *gorm.DB, logger *zap.Logger) *QuoteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteService{db: db, logger: logger}
}

// CanDelete evaluates the quote deletion guard. Rules run in a fixed
// order and the first one that fails names the reason; a quote passes
// only when none apply.
func (s *QuoteService) CanDelete(ctx context.Context, quoteID uuid.UUID, filter shared.TenantFilter) (billing.CanDeleteResult, error) {
	quotes := persistence.NewGormQuoteRepository(s.db)
	invoices := persistence.NewGormInvoiceRepository(s.db, s.logger)
	surveys := persistence.NewGormSurveyRepository(s.db)

	quote, err := quotes.FindByID(ctx, quoteID, filter)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return billing.NotDeletable(billing.ReasonQuoteNotFound), nil
		}
		return billing.CanDeleteResult{}, err
	}

	if quote.Status == billing.QuoteStatusConverted {
		return billing.NotDeletable(billing.ReasonQuoteConverted), nil
	}
	if quote.Status == billing.QuoteStatusAccepted {
		return billing.NotDeletable(billing.ReasonQuoteAccepted), nil
	}

	// The invoice link blocks deletion even when the quote status was
	// never flipped to converted.
	linked, err := invoices.FindByQuote(ctx, quoteID, filter)
	if err != nil {
		return billing.CanDeleteResult{}, err
	}
	if len(linked) > 0 {
		return billing.NotDeletable(billing.ReasonQuoteHasInvoices), nil
	}

	if quote.SurveyID != nil {
		survey, err := surveys.FindByID(ctx, *quote.SurveyID, filter)
		switch {
		case err == nil:
			if survey.IsCompleted() {
				return billing.NotDeletable(billing.ReasonQuoteSurveyDone), nil
			}
		case errors.Is(err, shared.ErrNotFound):
			// A dangling survey reference does not block deletion.
		default:
			return billing.CanDeleteResult{}, err
		}
	}

	return billing.Deletable(), nil
}

// DeleteQuote runs the deletion guard and, when it allows, removes the
// quote together with its line items and attachments in one transaction.
// A blocked delete surfaces as a conflict carrying the guard's reason.
func (s *QuoteService) DeleteQuote(ctx context.Context, quoteID uuid.UUID, filter shared.TenantFilter) error {
	verdict, err := s.CanDelete(ctx, quoteID, filter)
	if err != nil {
		return err
	}
	if !verdict.CanDelete {
		if verdict.Reason == billing.ReasonQuoteNotFound {
			return shared.ErrNotFound
		}
		return shared.NewConflictError(verdict.Reason)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := persistence.NewGormQuoteItemRepository(tx)
		attachments := persistence.NewGormFileAttachmentRepository(tx)
		quotes := persistence.NewGormQuoteRepository(tx)

		if err := items.DeleteByQuote(ctx, quoteID, filter); err != nil {
			return err
		}
		if err := attachments.DeleteByRelatedEntity(ctx, "quote", quoteID, filter); err != nil {
			return err
		}
		return quotes.Delete(ctx, quoteID, filter)
	})
	if err != nil {
		s.logger.Error("quote delete failed",
			zap.String("quote_id", quoteID.String()),
			zap.Error(err))
		return err
	}

	s.logger.Info("quote deleted", zap.String("quote_id", quoteID.String()))
	return nil
}

// GenerateInvoice converts a quote into a draft invoice. The invoice
// copies the quote's line items and totals, receives its own number on
// insert, and the quote is marked converted in the same transaction so a
// crash cannot leave a converted quote without its invoice.
func (s *QuoteService) GenerateInvoice(ctx context.Context, quoteID uuid.UUID, filter shared.TenantFilter) (*billing.Invoice, error) {
	quotes := persistence.NewGormQuoteRepository(s.db)
	quote, err := quotes.FindByID(ctx, quoteID, filter)
	if err != nil {
		return nil, err
	}
	if quote.Status == billing.QuoteStatusConverted {
		return nil, shared.NewConflictError("Quote has already been converted to an invoice")
	}
	if quote.Status == billing.QuoteStatusRejected {
		return nil, shared.NewConflictError("Quote has been rejected and cannot be invoiced")
	}

	var invoice *billing.Invoice
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txQuotes := persistence.NewGormQuoteRepository(tx)
		txQuoteItems := persistence.NewGormQuoteItemRepository(tx)
		txInvoices := persistence.NewGormInvoiceRepository(tx, s.logger)
		txInvoiceItems := persistence.NewGormInvoiceItemRepository(tx)

		quoteItems, err := txQuoteItems.FindByQuote(ctx, quoteID, filter)
		if err != nil {
			return err
		}

		quoteRef := quote.ID
		invoice = &billing.Invoice{
			BaseEntity: shared.NewBaseEntity(),
			TenantID:   quote.TenantID,
			ProjectID:  quote.ProjectID,
			CustomerID: quote.CustomerID,
			QuoteID:    &quoteRef,
			Status:     billing.InvoiceStatusDraft,
			IssueDate:  time.Now(),
			Subtotal:   quote.Subtotal,
			TaxAmount:  quote.TaxAmount,
			Total:      quote.Total,
			Notes:      quote.Notes,
		}
		if err := txInvoices.Create(ctx, invoice); err != nil {
			return err
		}

		for _, qi := range quoteItems {
			catalogRef := qi.CatalogItemID
			item := &billing.InvoiceItem{
				TenantEntity:  shared.NewTenantEntity(quote.TenantID),
				InvoiceID:     invoice.ID,
				CatalogItemID: catalogRef,
				Description:   qi.Description,
				Quantity:      qi.Quantity,
				UnitPrice:     qi.UnitPrice,
				Total:         qi.Total,
			}
			if err := txInvoiceItems.Create(ctx, item); err != nil {
				return err
			}
		}

		_, err = txQuotes.Update(ctx, quote.ID,
			map[string]any{"status": string(billing.QuoteStatusConverted)}, filter)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("invoice generated from quote",
		zap.String("quote_id", quote.ID.String()),
		zap.String("invoice_number", invoice.InvoiceNumber))
	return invoice, nil
}
