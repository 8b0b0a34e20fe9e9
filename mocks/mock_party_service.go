package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billbook/internal/domain"
	"billbook/internal/port"
	"billbook/internal/service"
)

// MockPartyService is a mock implementation of service.PartyService.
type MockPartyService struct {
	mock.Mock
}

func (m *MockPartyService) Create(ctx context.Context, companyID uuid.UUID, input service.PartyInput) (*domain.Party, error) {
	args := m.Called(ctx, companyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) GetByID(ctx context.Context, companyID, partyID uuid.UUID) (*domain.Party, error) {
	args := m.Called(ctx, companyID, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) List(ctx context.Context, companyID uuid.UUID, filter port.PartyFilter) ([]domain.Party, int, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Party), args.Int(1), args.Error(2)
}

func (m *MockPartyService) Update(ctx context.Context, companyID, partyID uuid.UUID, input service.PartyInput) (*domain.Party, error) {
	args := m.Called(ctx, companyID, partyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) Delete(ctx context.Context, companyID, partyID uuid.UUID) error {
	args := m.Called(ctx, companyID, partyID)
	return args.Error(0)
}
