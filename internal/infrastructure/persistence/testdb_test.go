package persistence

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/identity"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/inventory"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/partner"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/projectops"
)

// newTestDB opens an in-memory sqlite database with the full schema.
// Connections are limited to one so every goroutine shares the same
// in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(Models()...))
	return db
}

// newTestTenant inserts a tenant row and returns its ID
func newTestTenant(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	tenant, err := identity.NewTenant("T"+uuid.NewString()[:8], "Test Tenant")
	require.NoError(t, err)
	require.NoError(t, db.Create(tenant).Error)
	return tenant.ID
}

// newTestCustomer inserts a customer for the tenant
func newTestCustomer(t *testing.T, db *gorm.DB, tenantID uuid.UUID) *partner.Customer {
	t.Helper()

	customer, err := partner.NewCustomer(tenantID, "Acme Ltd")
	require.NoError(t, err)
	require.NoError(t, db.Create(customer).Error)
	return customer
}

// newTestProject inserts a project for the tenant
func newTestProject(t *testing.T, db *gorm.DB, tenantID uuid.UUID) *projectops.Project {
	t.Helper()

	customer := newTestCustomer(t, db, tenantID)
	project, err := projectops.NewProject(tenantID, customer.ID, "Workshop refit")
	require.NoError(t, err)
	require.NoError(t, db.Create(project).Error)
	return project
}

// newTestInventoryItem inserts a tracked item with the given opening stock
func newTestInventoryItem(t *testing.T, db *gorm.DB, tenantID uuid.UUID, sku string, opening int64) *inventory.InventoryItem {
	t.Helper()

	item, err := inventory.NewInventoryItem(tenantID, sku, "Test item "+sku, decimal.NewFromInt(opening))
	require.NoError(t, err)
	require.NoError(t, db.Create(item).Error)
	return item
}
