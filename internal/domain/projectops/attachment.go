package projectops

import (
	"strings"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// FileAttachment associates an uploaded file with any business entity via
// a (RelatedType, RelatedID) pair. The attachment carries its own tenant
// so visibility can be checked without loading the related row first;
// authorisation still verifies the related entity's ownership.
type FileAttachment struct {
	shared.TenantEntity
	RelatedType string     `gorm:"size:32;not null;index:idx_attachments_related"`
	RelatedID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_attachments_related"`
	FileName    string     `gorm:"size:255;not null"`
	ContentType string     `gorm:"size:128"`
	FileSize    int64      `gorm:"not null;default:0"`
	StorageKey  string     `gorm:"size:512;not null"`
	UploadedBy  *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the database table name
func (FileAttachment) TableName() string {
	return "file_attachments"
}

// NewFileAttachment creates a new attachment record. RelatedType is
// normalised to lower case so lookups are case-insensitive.
func NewFileAttachment(tenantID uuid.UUID, relatedType string, relatedID uuid.UUID, fileName, storageKey string) (*FileAttachment, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrTenantRequired
	}
	relatedType = strings.ToLower(strings.TrimSpace(relatedType))
	if relatedType == "" {
		return nil, shared.NewValidationError("related type is required")
	}
	if relatedID == uuid.Nil {
		return nil, shared.NewValidationError("related id is required")
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, shared.NewValidationError("file name is required")
	}
	if strings.TrimSpace(storageKey) == "" {
		return nil, shared.NewValidationError("storage key is required")
	}
	return &FileAttachment{
		TenantEntity: shared.NewTenantEntity(tenantID),
		RelatedType:  relatedType,
		RelatedID:    relatedID,
		FileName:     fileName,
		StorageKey:   storageKey,
	}, nil
}
