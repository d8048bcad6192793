package projectops

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/application/relatedentity"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/projectops"
	"github.com/AutomationProtocolsService/business-management-platform-sub000/internal/domain/shared"
)

// ObjectStore is the object storage surface the attachment workflows
// need. Both the S3 store and the development stub satisfy it.
type ObjectStore interface {
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
	DeleteObject(ctx context.Context, storageKey string) error
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// CreateAttachmentInput carries a new attachment registration
type CreateAttachmentInput struct {
	TenantID    uuid.UUID `validate:"required"`
	RelatedType string    `validate:"required,max=32"`
	RelatedID   uuid.UUID `validate:"required"`
	FileName    string    `validate:"required,max=255"`
	ContentType string    `validate:"max=128"`
	FileSize    int64     `validate:"min=0"`
	UploadedBy  *uuid.UUID
}

// AttachmentUpload is the result of registering an attachment: the
// stored record plus a presigned URL the client uploads the payload to.
type AttachmentUpload struct {
	Attachment *projectops.FileAttachment `json:"attachment"`
	UploadURL  string                     `json:"uploadUrl"`
	ExpiresAt  time.Time                  `json:"expiresAt"`
}

// AttachmentService manages attachment records and their payloads. The
// record lives in the relational store; the payload moves directly
// between the client and object storage via presigned URLs.
type AttachmentService struct {
	attachments projectops.FileAttachmentRepository
	verifier    *relatedentity.Verifier
	store       ObjectStore
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewAttachmentService creates a new AttachmentService
func NewAttachmentService(attachments projectops.FileAttachmentRepository, verifier *relatedentity.Verifier, store ObjectStore, logger *zap.Logger) *AttachmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttachmentService{
		attachments: attachments,
		verifier:    verifier,
		store:       store,
		validate:    validator.New(),
		logger:      logger,
	}
}

// buildStorageKey derives a unique object key. The original file name is
// kept as the suffix so downloads carry a recognisable name.
func buildStorageKey(tenantID uuid.UUID, relatedType string, relatedID uuid.UUID, fileName string) string {
	return path.Join(
		"tenants", tenantID.String(),
		strings.ToLower(strings.TrimSpace(relatedType)), relatedID.String(),
		fmt.Sprintf("%s-%s", uuid.New().String(), path.Base(fileName)),
	)
}

// CreateAttachment verifies the related entity belongs to the tenant,
// stores the attachment record and returns a presigned upload URL. An
// unverifiable related entity reads as not found, never as a hint that
// the record exists under another tenant.
func (s *AttachmentService) CreateAttachment(ctx context.Context, input CreateAttachmentInput) (*AttachmentUpload, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, shared.NewValidationError(err.Error())
	}
	if !s.verifier.VerifyRelated(ctx, input.RelatedType, input.RelatedID, input.TenantID) {
		return nil, shared.ErrNotFound
	}

	storageKey := buildStorageKey(input.TenantID, input.RelatedType, input.RelatedID, input.FileName)
	attachment, err := projectops.NewFileAttachment(input.TenantID, input.RelatedType, input.RelatedID, input.FileName, storageKey)
	if err != nil {
		return nil, err
	}
	attachment.ContentType = input.ContentType
	attachment.FileSize = input.FileSize
	attachment.UploadedBy = input.UploadedBy

	if err := s.attachments.Create(ctx, attachment); err != nil {
		return nil, err
	}

	uploadURL, expiresAt, err := s.store.GenerateUploadURL(ctx, storageKey, input.ContentType, 0)
	if err != nil {
		// The record is already committed; the client can request a
		// fresh upload URL for it later.
		s.logger.Error("upload URL generation failed",
			zap.String("attachment_id", attachment.ID.String()),
			zap.Error(err))
		return nil, err
	}

	return &AttachmentUpload{
		Attachment: attachment,
		UploadURL:  uploadURL,
		ExpiresAt:  expiresAt,
	}, nil
}

// DownloadURL returns a presigned download URL for a stored attachment
func (s *AttachmentService) DownloadURL(ctx context.Context, attachmentID uuid.UUID, filter shared.TenantFilter) (string, time.Time, error) {
	attachment, err := s.attachments.FindByID(ctx, attachmentID, filter)
	if err != nil {
		return "", time.Time{}, err
	}
	return s.store.GenerateDownloadURL(ctx, attachment.StorageKey, 0)
}

// ListForEntity lists the attachments of one business record, provided
// the record itself belongs to the tenant
func (s *AttachmentService) ListForEntity(ctx context.Context, relatedType string, relatedID uuid.UUID, filter shared.TenantFilter) ([]projectops.FileAttachment, error) {
	if filter.IsScoped() && !s.verifier.VerifyRelated(ctx, relatedType, relatedID, *filter.TenantID) {
		return nil, shared.ErrNotFound
	}
	return s.attachments.FindByRelatedEntity(ctx, relatedType, relatedID, filter)
}

// DeleteAttachment removes the record and then the stored payload. A
// payload delete failure is logged but does not resurrect the record.
func (s *AttachmentService) DeleteAttachment(ctx context.Context, attachmentID uuid.UUID, filter shared.TenantFilter) error {
	attachment, err := s.attachments.FindByID(ctx, attachmentID, filter)
	if err != nil {
		return err
	}
	if err := s.attachments.Delete(ctx, attachmentID, filter); err != nil {
		return err
	}
	if err := s.store.DeleteObject(ctx, attachment.StorageKey); err != nil {
		s.logger.Warn("attachment payload delete failed",
			zap.String("attachment_id", attachmentID.String()),
			zap.String("storage_key", attachment.StorageKey),
			zap.Error(err))
	}
	return nil
}
