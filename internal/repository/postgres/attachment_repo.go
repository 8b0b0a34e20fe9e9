package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"billbook/internal/domain"
	"billbook/internal/port"
)

type attachmentRepo struct {
	db *sqlx.DB
}

// NewAttachmentRepo creates a new PostgreSQL-backed AttachmentRepository.
func NewAttachmentRepo(db *sqlx.DB) port.AttachmentRepository {
	return &attachmentRepo{db: db}
}

func (r *attachmentRepo) Create(ctx context.Context, att *domain.Attachment) error {
	now := time.Now().UTC()
	att.CreatedAt = now
	att.UpdatedAt = now

	query := `INSERT INTO attachments
		(id, company_id, document_id, uploaded_by, file_name, original_name, file_type, file_size,
		 s3_bucket, s3_key, content_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		att.ID, att.CompanyID, att.DocumentID, att.UploadedBy, att.FileName, att.OriginalName,
		att.FileType, att.FileSize, att.S3Bucket, att.S3Key, att.ContentType,
		att.Status, att.CreatedAt, att.UpdatedAt)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Create: %w", err)
	}
	return nil
}

func (r *attachmentRepo) GetByID(ctx context.Context, companyID, attachmentID uuid.UUID) (*domain.Attachment, error) {
	var att domain.Attachment
	err := r.db.GetContext(ctx, &att,
		"SELECT * FROM attachments WHERE id = $1 AND company_id = $2", attachmentID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("attachmentRepo.GetByID: %w", err)
	}
	return &att, nil
}

func (r *attachmentRepo) ListByDocument(ctx context.Context, companyID, docID uuid.UUID) ([]domain.Attachment, error) {
	var atts []domain.Attachment
	if err := r.db.SelectContext(ctx, &atts,
		"SELECT * FROM attachments WHERE company_id = $1 AND document_id = $2 AND status = $3 ORDER BY created_at",
		companyID, docID, domain.FileStatusUploaded); err != nil {
		return nil, fmt.Errorf("attachmentRepo.ListByDocument: %w", err)
	}
	return atts, nil
}

func (r *attachmentRepo) UpdateStatus(ctx context.Context, companyID, attachmentID uuid.UUID, status domain.FileStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE attachments SET status = $1, updated_at = $2 WHERE id = $3 AND company_id = $4",
		status, time.Now().UTC(), attachmentID, companyID)
	if err != nil {
		return fmt.Errorf("attachmentRepo.UpdateStatus: %w", err)
	}
	return requireAffected(result, "attachmentRepo.UpdateStatus")
}

func (r *attachmentRepo) Delete(ctx context.Context, companyID, attachmentID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM attachments WHERE id = $1 AND company_id = $2", attachmentID, companyID)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Delete: %w", err)
	}
	return requireAffected(result, "attachmentRepo.Delete")
}
