package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billbook/internal/domain"
	"billbook/internal/service"
	"billbook/internal/totals"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Preview(ctx context.Context, session domain.Session, input service.DocumentInput) (*totals.Result, error) {
	args := m.Called(ctx, session, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*totals.Result), args.Error(1)
}

func (m *MockDocumentService) Create(ctx context.Context, session domain.Session, input service.DocumentInput) (*domain.Document, error) {
	args := m.Called(ctx, session, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) GetByID(ctx context.Context, companyID, docID uuid.UUID) (*domain.Document, error) {
	args := m.Called(ctx, companyID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, companyID uuid.UUID, filter domain.DocumentFilter) ([]domain.Document, int, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Document), args.Int(1), args.Error(2)
}

func (m *MockDocumentService) Update(ctx context.Context, session domain.Session, docID uuid.UUID, input service.DocumentInput) (*domain.Document, error) {
	args := m.Called(ctx, session, docID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, companyID, docID uuid.UUID) error {
	args := m.Called(ctx, companyID, docID)
	return args.Error(0)
}

func (m *MockDocumentService) Email(ctx context.Context, companyID, docID uuid.UUID) error {
	args := m.Called(ctx, companyID, docID)
	return args.Error(0)
}
