package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billbook/internal/domain"
)

// MockAttachmentRepo is a mock implementation of port.AttachmentRepository.
type MockAttachmentRepo struct {
	mock.Mock
}

func (m *MockAttachmentRepo) Create(ctx context.Context, att *domain.Attachment) error {
	args := m.Called(ctx, att)
	return args.Error(0)
}

func (m *MockAttachmentRepo) GetByID(ctx context.Context, companyID, attachmentID uuid.UUID) (*domain.Attachment, error) {
	args := m.Called(ctx, companyID, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepo) ListByDocument(ctx context.Context, companyID, docID uuid.UUID) ([]domain.Attachment, error) {
	args := m.Called(ctx, companyID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepo) UpdateStatus(ctx context.Context, companyID, attachmentID uuid.UUID, status domain.FileStatus) error {
	args := m.Called(ctx, companyID, attachmentID, status)
	return args.Error(0)
}

func (m *MockAttachmentRepo) Delete(ctx context.Context, companyID, attachmentID uuid.UUID) error {
	args := m.Called(ctx, companyID, attachmentID)
	return args.Error(0)
}
