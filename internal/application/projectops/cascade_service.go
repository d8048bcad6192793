// Package projectops orchestrates the workflows around projects and
// their attachments, including the full project cascade delete.
package projectops

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/infrastructure/persistence"
)

// CascadeService deletes a project together with everything hanging off
// it. The whole cascade runs inside one transaction; a failure at any
// step rolls the entire delete back so a project can never be left half
// removed.
type CascadeService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCascadeService creates a new CascadeService
func NewCascadeService(db *gorm.DB, logger *zap.Logger) *CascadeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CascadeService{db: db, logger: logger}
}

// DeleteProject removes the project and all of its dependents. Children
// go first and the project row last, so the row's disappearance means
// the cascade completed. Returns true only when the project row itself
// was deleted; any failure is logged and reported as false.
func (s *CascadeService) DeleteProject(ctx context.Context, projectID uuid.UUID, filter shared.TenantFilter) (bool, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attachments := persistence.NewGormFileAttachmentRepository(tx)
		surveys := persistence.NewGormSurveyRepository(tx)
		installations := persistence.NewGormInstallationRepository(tx)
		quotes := persistence.NewGormQuoteRepository(tx)
		quoteItems := persistence.NewGormQuoteItemRepository(tx)
		invoices := persistence.NewGormInvoiceRepository(tx, s.logger)
		invoiceItems := persistence.NewGormInvoiceItemRepository(tx)
		timesheets := persistence.NewGormTimesheetRepository(tx, s.logger)
		taskLists := persistence.NewGormTaskListRepository(tx)
		expenses := persistence.NewGormExpenseRepository(tx, s.logger)
		inventoryTxs := persistence.NewGormInventoryTransactionRepository(tx)
		purchaseOrders := persistence.NewGormPurchaseOrderRepository(tx)
		purchaseOrderItems := persistence.NewGormPurchaseOrderItemRepository(tx)
		projects := persistence.NewGormProjectRepository(tx)

		if err := attachments.DeleteByRelatedEntity(ctx, "project", projectID, filter); err != nil {
			return err
		}

		foundSurveys, err := surveys.FindByProject(ctx, projectID, filter)
		if err != nil {
			return err
		}
		for _, survey := range foundSurveys {
			if err := surveys.Delete(ctx, survey.ID, filter); err != nil {
				return err
			}
		}
		foundInstallations, err := installations.FindByProject(ctx, projectID, filter)
		if err != nil {
			return err
		}
		for _, installation := range foundInstallations {
			if err := installations.Delete(ctx, installation.ID, filter); err != nil {
				return err
			}
		}

		foundQuotes, err := quotes.FindByProject(ctx, projectID, filter)
		if err != nil {
			return err
		}
		for _, quote := range foundQuotes {
			if err := quoteItems.DeleteByQuote(ctx, quote.ID, filter); err != nil {
				return err
			}
			if err := attachments.DeleteByRelatedEntity(ctx, "quote", quote.ID, filter); err != nil {
				return err
			}
			if err := quotes.Delete(ctx, quote.ID, filter); err != nil {
				return err
			}
		}

		foundInvoices, err := invoices.FindByProject(ctx, projectID, filter)
		if err != nil {
			return err
		}
		for _, invoice := range foundInvoices {
			if err := invoiceItems.DeleteByInvoice(ctx, invoice.ID, filter); err != nil {
				return err
			}
			if err := attachments.DeleteByRelatedEntity(ctx, "invoice", invoice.ID, filter); err != nil {
				return err
			}
			if err := invoices.Delete(ctx, invoice.ID, filter); err != nil {
				return err
			}
		}

		foundTimesheets, err := timesheets.FindByProject(ctx, projectID, filter)
		if err != nil {
			return err
		}
		for _, sheet := range foundTimesheets {
			if err := timesheets.Delete(ctx, sheet.ID, filter); err != nil {
				return err
			}
		}

		// Task list deletion removes the list's tasks first.
		foundTaskLists, err := taskLists.FindByProject(ctx, projectID, filter)
		if err != nil {
			return err
		}
		for _, list := range foundTaskLists {
			if err := taskLists.Delete(ctx, list.ID, filter); err != nil {
				return err
			}
		}

		foundExpenses, err := expenses.FindByProject(ctx, projectID, filter)
		if err != nil {
			return err
		}
		for _, expense := range foundExpenses {
			if err := expenses.Delete(ctx, expense.ID, filter); err != nil {
				return err
			}
		}

		// Ledger rows go without reversing stock. Deleting a project
		// erases its consumption history, not the physical goods.
		if err := inventoryTxs.DeleteByProject(ctx, projectID, filter); err != nil {
			return err
		}

		foundOrders, err := purchaseOrders.FindByProject(ctx, projectID, filter)
		if err != nil {
			return err
		}
		for _, order := range foundOrders {
			if err := purchaseOrderItems.DeleteByPurchaseOrder(ctx, order.ID, filter); err != nil {
				return err
			}
			if err := attachments.DeleteByRelatedEntity(ctx, "purchase_order", order.ID, filter); err != nil {
				return err
			}
			if err := purchaseOrders.Delete(ctx, order.ID, filter); err != nil {
				return err
			}
		}

		return projects.Delete(ctx, projectID, filter)
	})
	if err != nil {
		s.logger.Error("project cascade delete failed",
			zap.String("project_id", projectID.String()),
			zap.Error(err))
		return false, err
	}

	s.logger.Info("project deleted", zap.String("project_id", projectID.String()))
	return true, nil
}
