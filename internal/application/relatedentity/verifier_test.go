package relatedentity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/identity"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/partner"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/projectops"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/infrastructure/persistence"
)

func newVerifierFixture(t *testing.T) (*Verifier, *gorm.DB, uuid.UUID) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(persistence.Models()...))

	tenant, err := identity.NewTenant("T"+uuid.NewString()[:8], "Test Tenant")
	require.NoError(t, err)
	require.NoError(t, db.Create(tenant).Error)

	verifier := NewVerifier(
		persistence.NewGormProjectRepository(db),
		persistence.NewGormQuoteRepository(db),
		persistence.NewGormInvoiceRepository(db, nil),
		persistence.NewGormPurchaseOrderRepository(db),
		persistence.NewGormSurveyRepository(db),
		persistence.NewGormInstallationRepository(db),
		persistence.NewGormCustomerRepository(db),
		persistence.NewGormSupplierRepository(db),
		persistence.NewGormInventoryItemRepository(db),
		nil,
	)
	return verifier, db, tenant.ID
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
		ok    bool
	}{
		{"project", KindProject, true},
		{"Quote", KindQuote, true},
		{"INVOICE", KindInvoice, true},
		{" purchase_order ", KindPurchaseOrder, true},
		{"survey", KindSurvey, true},
		{"installation", KindInstallation, true},
		{"customer", KindCustomer, true},
		{"supplier", KindSupplier, true},
		{"inventory_item", KindInventoryItem, true},
		{"", "", false},
		{"tenant", "", false},
		{"quotes", "", false},
	}
	for _, tc := range tests {
		got, ok := ParseKind(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestVerifierFailsClosed(t *testing.T) {
	verifier, db, tenantID := newVerifierFixture(t)
	ctx := context.Background()

	customer, err := partner.NewCustomer(tenantID, "Acme Ltd")
	require.NoError(t, err)
	require.NoError(t, db.Create(customer).Error)

	project, err := projectops.NewProject(tenantID, customer.ID, "Workshop refit")
	require.NoError(t, err)
	require.NoError(t, db.Create(project).Error)

	other, err := identity.NewTenant("T"+uuid.NewString()[:8], "Other Tenant")
	require.NoError(t, err)
	require.NoError(t, db.Create(other).Error)

	t.Run("owned_entity", func(t *testing.T) {
		assert.True(t, verifier.BelongsToTenant(ctx, KindProject, project.ID, tenantID))
		assert.True(t, verifier.VerifyRelated(ctx, "Project", project.ID, tenantID))
	})

	t.Run("foreign_tenant", func(t *testing.T) {
		assert.False(t, verifier.BelongsToTenant(ctx, KindProject, project.ID, other.ID))
	})

	t.Run("missing_entity", func(t *testing.T) {
		assert.False(t, verifier.BelongsToTenant(ctx, KindProject, uuid.New(), tenantID))
	})

	t.Run("unknown_kind", func(t *testing.T) {
		assert.False(t, verifier.BelongsToTenant(ctx, Kind("tenant"), project.ID, tenantID))
		assert.False(t, verifier.VerifyRelated(ctx, "tenant", project.ID, tenantID))
	})

	t.Run("customer_kind", func(t *testing.T) {
		assert.True(t, verifier.VerifyRelated(ctx, "customer", customer.ID, tenantID))
		assert.False(t, verifier.VerifyRelated(ctx, "customer", customer.ID, other.ID))
	})
}
