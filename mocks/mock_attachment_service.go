package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billbook/internal/domain"
	"billbook/internal/service"
)

// MockAttachmentService is a mock implementation of service.AttachmentService.
type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) Upload(ctx context.Context, input service.AttachmentUploadInput) (*domain.Attachment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentService) GetByID(ctx context.Context, companyID, attachmentID uuid.UUID) (*domain.Attachment, error) {
	args := m.Called(ctx, companyID, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentService) ListByDocument(ctx context.Context, companyID, docID uuid.UUID) ([]domain.Attachment, error) {
	args := m.Called(ctx, companyID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attachment), args.Error(1)
}

func (m *MockAttachmentService) GetDownloadURL(ctx context.Context, companyID, attachmentID uuid.UUID) (string, error) {
	args := m.Called(ctx, companyID, attachmentID)
	return args.String(0), args.Error(1)
}

func (m *MockAttachmentService) Delete(ctx context.Context, companyID, attachmentID uuid.UUID) error {
	args := m.Called(ctx, companyID, attachmentID)
	return args.Error(0)
}
