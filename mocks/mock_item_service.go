package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billbook/internal/domain"
	"billbook/internal/service"
)

// MockItemService is a mock implementation of service.ItemService.
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) Create(ctx context.Context, companyID uuid.UUID, input service.ItemInput) (*domain.Item, error) {
	args := m.Called(ctx, companyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) GetByID(ctx context.Context, companyID, itemID uuid.UUID) (*domain.Item, error) {
	args := m.Called(ctx, companyID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) List(ctx context.Context, companyID uuid.UUID, query string, offset, limit int) ([]domain.Item, int, error) {
	args := m.Called(ctx, companyID, query, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Item), args.Int(1), args.Error(2)
}

func (m *MockItemService) Update(ctx context.Context, companyID, itemID uuid.UUID, input service.ItemInput) (*domain.Item, error) {
	args := m.Called(ctx, companyID, itemID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) Delete(ctx context.Context, companyID, itemID uuid.UUID) error {
	args := m.Called(ctx, companyID, itemID)
	return args.Error(0)
}
