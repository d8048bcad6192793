package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/billing"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/identity"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/inventory"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/partner"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/procurement"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/projectops"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/infrastructure/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database holds the database connection and provides methods for
// database operations
type Database struct {
	DB *gorm.DB
}

// NewDatabase creates a new database connection with the given configuration
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	return newDatabaseWithLogLevel(cfg, logger.Silent)
}

// NewDatabaseWithLogger creates a new database connection with custom
// logger settings
func NewDatabaseWithLogger(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*Database, error) {
	return newDatabaseWithLogLevel(cfg, logLevel)
}

func newDatabaseWithLogLevel(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*Database, error) {
	dsn := cfg.DSN()
	gormLogger := logger.Default.LogMode(logLevel)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{DB: db}, nil
}

// Models returns every persisted entity type, in an order safe for
// schema creation (referenced tables first).
func Models() []any {
	return []any{
		&identity.Tenant{},
		&identity.User{},
		&identity.Organization{},
		&identity.UserOrganization{},
		&identity.UserInvitation{},
		&identity.PasswordResetToken{},
		&identity.Employee{},
		&partner.Customer{},
		&partner.Supplier{},
		&projectops.Project{},
		&projectops.Survey{},
		&projectops.Installation{},
		&projectops.TaskList{},
		&projectops.Task{},
		&projectops.Timesheet{},
		&projectops.Expense{},
		&projectops.FileAttachment{},
		&billing.CatalogItem{},
		&billing.Quote{},
		&billing.QuoteItem{},
		&billing.Invoice{},
		&billing.InvoiceItem{},
		&procurement.PurchaseOrder{},
		&procurement.PurchaseOrderItem{},
		&inventory.InventoryItem{},
		&inventory.InventoryTransaction{},
	}
}

// Migrate creates or updates the schema for every persisted entity
func (d *Database) Migrate() error {
	return d.DB.AutoMigrate(Models()...)
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}

// Transaction executes a function within a database transaction
func (d *Database) Transaction(fn func(tx *gorm.DB) error) error {
	return d.DB.Transaction(fn)
}

// AdminQuery executes parameterized SQL and returns generic rows. It is
// the cross-tenant escape hatch for administrative reporting (aggregate
// counts by tenant, distribution reports) and bypasses every per-row
// tenant check; it must never be reachable from tenant-scoped request
// paths.
func (d *Database) AdminQuery(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
	var rows []map[string]any
	if err := d.DB.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return rows, nil
}
