package shared

import (
	"context"

	"github.com/google/uuid"
)

// TenantFilter scopes a storage operation to a single tenant. A zero-value
// filter is unscoped and must only be reachable from administrative paths,
// never from tenant-facing request handling.
type TenantFilter struct {
	TenantID *uuid.UUID
}

// ScopedTo returns a filter restricted to the given tenant
func ScopedTo(tenantID uuid.UUID) TenantFilter {
	return TenantFilter{TenantID: &tenantID}
}

// Unscoped returns a filter with no tenant restriction
func Unscoped() TenantFilter {
	return TenantFilter{}
}

// IsScoped reports whether the filter restricts to a tenant
func (f TenantFilter) IsScoped() bool {
	return f.TenantID != nil
}

// Matches reports whether a row owned by tenantID is visible through
// this filter
func (f TenantFilter) Matches(tenantID uuid.UUID) bool {
	return f.TenantID == nil || *f.TenantID == tenantID
}

// Repository is the base contract all entity repositories satisfy.
// FindByID returns ErrNotFound both when the row is absent and when the
// filter excludes it.
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID, filter TenantFilter) (*T, error)
	FindAll(ctx context.Context, filter TenantFilter) ([]T, error)
	FindPage(ctx context.Context, query Filter, filter TenantFilter) (Paginated[T], error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter TenantFilter) (*T, error)
	Delete(ctx context.Context, id uuid.UUID, filter TenantFilter) error
	Count(ctx context.Context, filter TenantFilter) (int64, error)
}

// Filter represents list query options layered on top of tenant scoping
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
