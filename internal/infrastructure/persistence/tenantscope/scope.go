// Package tenantscope applies optional tenant filtering to GORM queries.
//
// Every repository read/write accepts a shared.TenantFilter; a scoped
// filter becomes a WHERE tenant_id = ? condition so a row owned by a
// different tenant is indistinguishable from a missing row. An unscoped
// filter applies no condition and is reserved for administrative paths.
package tenantscope

import (
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Apply adds the tenant condition for a scoped filter on the default
// tenant_id column
func Apply(db *gorm.DB, filter shared.TenantFilter) *gorm.DB {
	return ApplyColumn(db, filter, "tenant_id")
}

// ApplyColumn adds the tenant condition on a custom column
func ApplyColumn(db *gorm.DB, filter shared.TenantFilter, column string) *gorm.DB {
	if !filter.IsScoped() {
		return db
	}
	return db.Where(column+" = ?", *filter.TenantID)
}

// Scope returns the filter as a gorm scope for use with db.Scopes
func Scope(filter shared.TenantFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return Apply(db, filter)
	}
}

// TenantScope applies a mandatory tenant restriction
func TenantScope(tenantID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}
