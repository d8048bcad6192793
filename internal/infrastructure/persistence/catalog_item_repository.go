package persistence

import (
	"context"
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/billing"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogItemRepository implements CatalogItemRepository using GORM
type GormCatalogItemRepository struct {
	entityStore[billing.CatalogItem]
}

// NewGormCatalogItemRepository creates a new GormCatalogItemRepository
func NewGormCatalogItemRepository(db *gorm.DB) *GormCatalogItemRepository {
	return &GormCatalogItemRepository{entityStore[billing.CatalogItem]{db: db}}
}

func (r *GormCatalogItemRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*billing.CatalogItem, error) {
	return r.findByID(ctx, id, filter)
}

func (r *GormCatalogItemRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]billing.CatalogItem, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of catalog items ordered by a whitelisted column
func (r *GormCatalogItemRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[billing.CatalogItem], error) {
	return r.findPage(ctx, query, filter, CatalogItemSortFields)
}

// FindByCategory lists catalog items in a category
func (r *GormCatalogItemRepository) FindByCategory(ctx context.Context, category string, filter shared.TenantFilter) ([]billing.CatalogItem, error) {
	return r.findWhere(ctx, filter, "category = ?", strings.TrimSpace(category))
}

// FindActive lists catalog items still offered for quoting
func (r *GormCatalogItemRepository) FindActive(ctx context.Context, filter shared.TenantFilter) ([]billing.CatalogItem, error) {
	return r.findWhere(ctx, filter, "active = ?", true)
}

func (r *GormCatalogItemRepository) Create(ctx context.Context, item *billing.CatalogItem) error {
	if item.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, item)
}

func (r *GormCatalogItemRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*billing.CatalogItem, error) {
	return r.update(ctx, id, patch, filter)
}

func (r *GormCatalogItemRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

func (r *GormCatalogItemRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormCatalogItemRepository implements CatalogItemRepository
var _ billing.CatalogItemRepository = (*GormCatalogItemRepository)(nil)
