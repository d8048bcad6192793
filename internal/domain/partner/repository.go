package partner

import (
	"context"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
)

// CustomerRepository persists customers
type CustomerRepository interface {
	shared.Repository[Customer]
	FindByName(ctx context.Context, name string, filter shared.TenantFilter) ([]Customer, error)
}

// SupplierRepository persists suppliers
type SupplierRepository interface {
	shared.Repository[Supplier]
	FindByName(ctx context.Context, name string, filter shared.TenantFilter) ([]Supplier, error)
}
