package port

import (
	"context"
	"io"

	"billbook/internal/domain"
)

// UploadInput describes one object to store.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
	// Metadata is stored as object user metadata.
	Metadata map[string]string
}

// UploadOutput contains the result of a successful upload.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage holds attachment bytes.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Delete(ctx context.Context, bucket, key string) error
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}

// EmailSender delivers document mail to parties.
type EmailSender interface {
	SendDocumentSummary(ctx context.Context, toEmail, toName string, summary domain.DocumentSummary) error
}
