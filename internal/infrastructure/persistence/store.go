package persistence

import (
	"context"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/infrastructure/persistence/tenantscope"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// protectedColumns are never accepted as merge-patch targets. The primary
// key and the tenant ownership column cannot be rewritten through the
// partial-update path.
var protectedColumns = []string{"id", "tenant_id", "created_at"}

// entityStore is the CRUD core shared by all tenant-scoped repositories.
// Every specialised repository embeds it and layers its secondary lookups
// on top; that keeps tenant-scoping behaviour identical across the ~25
// entity types instead of re-implemented per repository.
type entityStore[T any] struct {
	db *gorm.DB
}

// scoped returns a context-bound query with the tenant filter applied.
// Lookups that need ordering or projection build on this directly.
func (s *entityStore[T]) scoped(ctx context.Context, filter shared.TenantFilter) *gorm.DB {
	return tenantscope.Apply(s.db.WithContext(ctx), filter)
}

// findByID fetches a row by primary key through the tenant filter.
// A row owned by another tenant yields ErrNotFound, never the row.
func (s *entityStore[T]) findByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*T, error) {
	var entity T
	err := tenantscope.Apply(s.db.WithContext(ctx), filter).
		First(&entity, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &entity, nil
}

// findAll lists every row visible through the tenant filter
func (s *entityStore[T]) findAll(ctx context.Context, filter shared.TenantFilter) ([]T, error) {
	var entities []T
	err := tenantscope.Apply(s.db.WithContext(ctx), filter).
		Find(&entities).Error
	if err != nil {
		return nil, translateError(err)
	}
	return entities, nil
}

// findWhere lists rows matching an extra condition through the filter
func (s *entityStore[T]) findWhere(ctx context.Context, filter shared.TenantFilter, query string, args ...any) ([]T, error) {
	var entities []T
	err := tenantscope.Apply(s.db.WithContext(ctx), filter).
		Where(query, args...).
		Find(&entities).Error
	if err != nil {
		return nil, translateError(err)
	}
	return entities, nil
}

// firstWhere fetches a single row matching an extra condition
func (s *entityStore[T]) firstWhere(ctx context.Context, filter shared.TenantFilter, query string, args ...any) (*T, error) {
	var entity T
	err := tenantscope.Apply(s.db.WithContext(ctx), filter).
		Where(query, args...).
		First(&entity).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &entity, nil
}

// create inserts the entity, translating constraint violations
func (s *entityStore[T]) create(ctx context.Context, entity *T) error {
	return translateError(s.db.WithContext(ctx).Create(entity).Error)
}

// update merge-patches the named columns only. Protected columns are
// stripped before the statement is built; the patched row is re-read
// through the same filter so the caller gets the stored state back.
func (s *entityStore[T]) update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*T, error) {
	sanitised := make(map[string]any, len(patch))
	for k, v := range patch {
		sanitised[k] = v
	}
	for _, col := range protectedColumns {
		delete(sanitised, col)
	}
	if len(sanitised) == 0 {
		return s.findByID(ctx, id, filter)
	}

	var model T
	result := tenantscope.Apply(s.db.WithContext(ctx).Model(&model), filter).
		Where("id = ?", id).
		Updates(sanitised)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}
	return s.findByID(ctx, id, filter)
}

// deleteByID hard-deletes a row through the tenant filter. Missing row
// and tenant mismatch both surface as ErrNotFound.
func (s *entityStore[T]) deleteByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	var model T
	result := tenantscope.Apply(s.db.WithContext(ctx), filter).
		Where("id = ?", id).
		Delete(&model)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// deleteWhere hard-deletes all rows matching a condition. Deleting zero
// rows is not an error here; bulk cleanup of an empty set is a no-op.
func (s *entityStore[T]) deleteWhere(ctx context.Context, filter shared.TenantFilter, query string, args ...any) error {
	var model T
	result := tenantscope.Apply(s.db.WithContext(ctx), filter).
		Where(query, args...).
		Delete(&model)
	return translateError(result.Error)
}

// maxPageSize caps a single page so a hostile page_size cannot pull the
// whole table.
const maxPageSize = 100

// findPage lists one page of rows ordered by a whitelisted column. The
// sort field passes through ValidateSortField so list endpoints can never
// inject SQL through order-by.
func (s *entityStore[T]) findPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter, allowedFields map[string]bool) (shared.Paginated[T], error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	sortField := ValidateSortField(query.OrderBy, allowedFields, "created_at")
	sortOrder := ValidateSortOrder(query.OrderDir)

	total, err := s.count(ctx, filter)
	if err != nil {
		return shared.Paginated[T]{}, err
	}

	var entities []T
	err = s.scoped(ctx, filter).
		Order(sortField + " " + sortOrder).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entities).Error
	if err != nil {
		return shared.Paginated[T]{}, translateError(err)
	}
	return shared.NewPaginated(entities, total, page, pageSize), nil
}

// count counts rows visible through the tenant filter
func (s *entityStore[T]) count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	var model T
	var n int64
	err := tenantscope.Apply(s.db.WithContext(ctx).Model(&model), filter).
		Count(&n).Error
	if err != nil {
		return 0, translateError(err)
	}
	return n, nil
}
