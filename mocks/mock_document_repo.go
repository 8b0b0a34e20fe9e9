package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billbook/internal/domain"
	"billbook/internal/port"
)

// MockDocumentRepo is a mock implementation of port.DocumentRepository.
type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Create(ctx context.Context, doc *domain.Document, prefix string, moves []domain.StockMove) error {
	args := m.Called(ctx, doc, prefix, moves)
	return args.Error(0)
}

func (m *MockDocumentRepo) GetByID(ctx context.Context, companyID, docID uuid.UUID) (*domain.Document, error) {
	args := m.Called(ctx, companyID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepo) List(ctx context.Context, companyID uuid.UUID, filter domain.DocumentFilter) ([]domain.Document, int, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Document), args.Int(1), args.Error(2)
}

func (m *MockDocumentRepo) ListByParty(ctx context.Context, companyID, partyID uuid.UUID) ([]domain.Document, error) {
	args := m.Called(ctx, companyID, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepo) Update(ctx context.Context, doc *domain.Document, revise port.ReviseFunc) error {
	args := m.Called(ctx, doc, revise)
	return args.Error(0)
}

func (m *MockDocumentRepo) Delete(ctx context.Context, companyID, docID uuid.UUID, undo port.UndoFunc) error {
	args := m.Called(ctx, companyID, docID, undo)
	return args.Error(0)
}
