package persistence

import (
	"context"
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/projectops"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFileAttachmentRepository implements FileAttachmentRepository using GORM
type GormFileAttachmentRepository struct {
	entityStore[projectops.FileAttachment]
}

// NewGormFileAttachmentRepository creates a new GormFileAttachmentRepository
func NewGormFileAttachmentRepository(db *gorm.DB) *GormFileAttachmentRepository {
	return &GormFileAttachmentRepository{entityStore[projectops.FileAttachment]{db: db}}
}

func (r *GormFileAttachmentRepository) FindByID(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) (*projectops.FileAttachment, error) {
	return r.findByID(ctx, id, filter)
}

func (r *GormFileAttachmentRepository) FindAll(ctx context.Context, filter shared.TenantFilter) ([]projectops.FileAttachment, error) {
	return r.findAll(ctx, filter)
}

// FindPage lists one page of attachments ordered by a whitelisted column
func (r *GormFileAttachmentRepository) FindPage(ctx context.Context, query shared.Filter, filter shared.TenantFilter) (shared.Paginated[projectops.FileAttachment], error) {
	return r.findPage(ctx, query, filter, CommonSortFields)
}

// FindByRelatedEntity lists attachments hanging off one business record.
// The related type is stored lowercased, so the lookup lowercases too.
func (r *GormFileAttachmentRepository) FindByRelatedEntity(ctx context.Context, relatedType string, relatedID uuid.UUID, filter shared.TenantFilter) ([]projectops.FileAttachment, error) {
	return r.findWhere(ctx, filter, "related_type = ? AND related_id = ?",
		strings.ToLower(strings.TrimSpace(relatedType)), relatedID)
}

// DeleteByRelatedEntity removes every attachment row for one business
// record. Zero matches is a no-op, not an error.
func (r *GormFileAttachmentRepository) DeleteByRelatedEntity(ctx context.Context, relatedType string, relatedID uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteWhere(ctx, filter, "related_type = ? AND related_id = ?",
		strings.ToLower(strings.TrimSpace(relatedType)), relatedID)
}

func (r *GormFileAttachmentRepository) Create(ctx context.Context, attachment *projectops.FileAttachment) error {
	if attachment.TenantID == uuid.Nil {
		return shared.ErrTenantRequired
	}
	return r.create(ctx, attachment)
}

func (r *GormFileAttachmentRepository) Update(ctx context.Context, id uuid.UUID, patch map[string]any, filter shared.TenantFilter) (*projectops.FileAttachment, error) {
	return r.update(ctx, id, patch, filter)
}

func (r *GormFileAttachmentRepository) Delete(ctx context.Context, id uuid.UUID, filter shared.TenantFilter) error {
	return r.deleteByID(ctx, id, filter)
}

func (r *GormFileAttachmentRepository) Count(ctx context.Context, filter shared.TenantFilter) (int64, error) {
	return r.count(ctx, filter)
}

// Ensure GormFileAttachmentRepository implements FileAttachmentRepository
var _ projectops.FileAttachmentRepository = (*GormFileAttachmentRepository)(nil)
