package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"billbook/internal/config"
	"billbook/internal/domain"
	"billbook/internal/port"
)

// AttachmentUploadInput is the DTO for attaching a scanned bill or receipt.
type AttachmentUploadInput struct {
	CompanyID  uuid.UUID
	DocumentID uuid.UUID
	UploadedBy uuid.UUID
	File       multipart.File
	Header     *multipart.FileHeader
}

// AttachmentService defines the attachment management contract.
type AttachmentService interface {
	Upload(ctx context.Context, input AttachmentUploadInput) (*domain.Attachment, error)
	GetByID(ctx context.Context, companyID, attachmentID uuid.UUID) (*domain.Attachment, error)
	ListByDocument(ctx context.Context, companyID, docID uuid.UUID) ([]domain.Attachment, error)
	GetDownloadURL(ctx context.Context, companyID, attachmentID uuid.UUID) (string, error)
	Delete(ctx context.Context, companyID, attachmentID uuid.UUID) error
}

type attachmentService struct {
	attRepo port.AttachmentRepository
	docRepo port.DocumentRepository
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewAttachmentService creates a new AttachmentService implementation.
func NewAttachmentService(
	attRepo port.AttachmentRepository,
	docRepo port.DocumentRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) AttachmentService {
	return &attachmentService{
		attRepo: attRepo,
		docRepo: docRepo,
		storage: storage,
		cfg:     cfg,
	}
}

func (s *attachmentService) Upload(ctx context.Context, input AttachmentUploadInput) (*domain.Attachment, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	if input.Header.Size > s.cfg.MaxFileSizeMB*1024*1024 {
		return nil, domain.ErrFileTooLarge
	}

	// Sniff the first 512 bytes; the extension alone is not trusted.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	if _, ok := domain.AllowedContentTypes[http.DetectContentType(buf[:n])]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	doc, err := s.docRepo.GetByID(ctx, input.CompanyID, input.DocumentID)
	if err != nil {
		return nil, err
	}

	attID := uuid.New()
	contentType := domain.AllowedFileTypes[fileType]
	att := &domain.Attachment{
		ID:           attID,
		CompanyID:    input.CompanyID,
		DocumentID:   doc.ID,
		UploadedBy:   input.UploadedBy,
		FileName:     attID.String() + "." + ext,
		OriginalName: input.Header.Filename,
		FileType:     fileType,
		FileSize:     input.Header.Size,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        fmt.Sprintf("companies/%s/documents/%s/%s.%s", input.CompanyID, doc.ID, attID, ext),
		ContentType:  contentType,
		Status:       domain.FileStatusPending,
	}

	log.Info().
		Str("document_id", doc.ID.String()).
		Str("file", input.Header.Filename).
		Int64("size", input.Header.Size).
		Msg("attachmentService.Upload: uploading attachment")

	if err := s.attRepo.Create(ctx, att); err != nil {
		return nil, fmt.Errorf("creating attachment: %w", err)
	}

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      att.S3Bucket,
		Key:         att.S3Key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
		Metadata: map[string]string{
			"document-number": doc.DocumentNumber,
			"original-name":   input.Header.Filename,
		},
	})
	if err != nil {
		log.Error().Err(err).Str("attachment_id", att.ID.String()).Msg("attachmentService.Upload: storage upload failed")
		_ = s.attRepo.UpdateStatus(ctx, att.CompanyID, att.ID, domain.FileStatusFailed)
		return nil, domain.ErrUploadFailed
	}

	if err := s.attRepo.UpdateStatus(ctx, att.CompanyID, att.ID, domain.FileStatusUploaded); err != nil {
		return nil, fmt.Errorf("updating attachment status: %w", err)
	}
	att.Status = domain.FileStatusUploaded
	return att, nil
}

func (s *attachmentService) GetByID(ctx context.Context, companyID, attachmentID uuid.UUID) (*domain.Attachment, error) {
	return s.attRepo.GetByID(ctx, companyID, attachmentID)
}

func (s *attachmentService) ListByDocument(ctx context.Context, companyID, docID uuid.UUID) ([]domain.Attachment, error) {
	if _, err := s.docRepo.GetByID(ctx, companyID, docID); err != nil {
		return nil, err
	}
	return s.attRepo.ListByDocument(ctx, companyID, docID)
}

func (s *attachmentService) GetDownloadURL(ctx context.Context, companyID, attachmentID uuid.UUID) (string, error) {
	att, err := s.attRepo.GetByID(ctx, companyID, attachmentID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, att.S3Bucket, att.S3Key, s.cfg.PresignExpiry)
}

func (s *attachmentService) Delete(ctx context.Context, companyID, attachmentID uuid.UUID) error {
	att, err := s.attRepo.GetByID(ctx, companyID, attachmentID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, att.S3Bucket, att.S3Key); err != nil {
		log.Error().Err(err).Str("attachment_id", att.ID.String()).Msg("attachmentService.Delete: storage delete failed")
		return fmt.Errorf("deleting from storage: %w", err)
	}
	log.Info().Str("attachment_id", att.ID.String()).Msg("attachmentService.Delete: attachment deleted")
	return s.attRepo.Delete(ctx, companyID, attachmentID)
}
