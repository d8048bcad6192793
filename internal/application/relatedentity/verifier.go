// Package relatedentity resolves polymorphic (related type, related id)
// references to their owning tenant.
package relatedentity

import (
	"context"
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/billing"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/inventory"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/partner"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/procurement"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/projectops"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Kind names an entity type that attachments and ledger rows may
// reference. The set is closed; anything else fails verification.
type Kind string

const (
	KindProject       Kind = "project"
	KindQuote         Kind = "quote"
	KindInvoice       Kind = "invoice"
	KindPurchaseOrder Kind = "purchase_order"
	KindSurvey        Kind = "survey"
	KindInstallation  Kind = "installation"
	KindCustomer      Kind = "customer"
	KindSupplier      Kind = "supplier"
	KindInventoryItem Kind = "inventory_item"
)

// ParseKind maps a stored related-type string to its Kind,
// case-insensitively. The second return is false for anything outside
// the closed set.
func ParseKind(relatedType string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(relatedType))) {
	case KindProject:
		return KindProject, true
	case KindQuote:
		return KindQuote, true
	case KindInvoice:
		return KindInvoice, true
	case KindPurchaseOrder:
		return KindPurchaseOrder, true
	case KindSurvey:
		return KindSurvey, true
	case KindInstallation:
		return KindInstallation, true
	case KindCustomer:
		return KindCustomer, true
	case KindSupplier:
		return KindSupplier, true
	case KindInventoryItem:
		return KindInventoryItem, true
	}
	return "", false
}

// Verifier answers "does this entity belong to this tenant" for any Kind.
// It gates attachment visibility, so it fails closed: unknown kinds and
// lookup errors both report not-owned.
type Verifier struct {
	projects       projectops.ProjectRepository
	quotes         billing.QuoteRepository
	invoices       billing.InvoiceRepository
	purchaseOrders procurement.PurchaseOrderRepository
	surveys        projectops.SurveyRepository
	installations  projectops.InstallationRepository
	customers      partner.CustomerRepository
	suppliers      partner.SupplierRepository
	inventoryItems inventory.InventoryItemRepository
	logger         *zap.Logger
}

// NewVerifier creates a new Verifier
func NewVerifier(
	projects projectops.ProjectRepository,
	quotes billing.QuoteRepository,
	invoices billing.InvoiceRepository,
	purchaseOrders procurement.PurchaseOrderRepository,
	surveys projectops.SurveyRepository,
	installations projectops.InstallationRepository,
	customers partner.CustomerRepository,
	suppliers partner.SupplierRepository,
	inventoryItems inventory.InventoryItemRepository,
	logger *zap.Logger,
) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{
		projects:       projects,
		quotes:         quotes,
		invoices:       invoices,
		purchaseOrders: purchaseOrders,
		surveys:        surveys,
		installations:  installations,
		customers:      customers,
		suppliers:      suppliers,
		inventoryItems: inventoryItems,
		logger:         logger,
	}
}

// BelongsToTenant reports whether the entity named by (kind, id) is owned
// by the tenant. A tenant-scoped lookup that fails for any reason,
// including plain not-found, reports false.
func (v *Verifier) BelongsToTenant(ctx context.Context, kind Kind, id uuid.UUID, tenantID uuid.UUID) bool {
	filter := shared.ScopedTo(tenantID)
	var err error
	switch kind {
	case KindProject:
		_, err = v.projects.FindByID(ctx, id, filter)
	case KindQuote:
		_, err = v.quotes.FindByID(ctx, id, filter)
	case KindInvoice:
		_, err = v.invoices.FindByID(ctx, id, filter)
	case KindPurchaseOrder:
		_, err = v.purchaseOrders.FindByID(ctx, id, filter)
	case KindSurvey:
		_, err = v.surveys.FindByID(ctx, id, filter)
	case KindInstallation:
		_, err = v.installations.FindByID(ctx, id, filter)
	case KindCustomer:
		_, err = v.customers.FindByID(ctx, id, filter)
	case KindSupplier:
		_, err = v.suppliers.FindByID(ctx, id, filter)
	case KindInventoryItem:
		_, err = v.inventoryItems.FindByID(ctx, id, filter)
	default:
		v.logger.Warn("unknown related entity kind",
			zap.String("kind", string(kind)),
			zap.String("related_id", id.String()),
			zap.String("tenant_id", tenantID.String()))
		return false
	}
	return err == nil
}

// VerifyRelated parses a raw related-type string and checks ownership.
// Unrecognised strings are logged as a data-integrity signal and fail
// closed.
func (v *Verifier) VerifyRelated(ctx context.Context, relatedType string, relatedID uuid.UUID, tenantID uuid.UUID) bool {
	kind, ok := ParseKind(relatedType)
	if !ok {
		v.logger.Warn("unknown related entity kind",
			zap.String("kind", relatedType),
			zap.String("related_id", relatedID.String()),
			zap.String("tenant_id", tenantID.String()))
		return false
	}
	return v.BelongsToTenant(ctx, kind, relatedID, tenantID)
}
