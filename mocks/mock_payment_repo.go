package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billbook/internal/domain"
	"billbook/internal/port"
)

// MockPaymentRepo is a mock implementation of port.PaymentRepository.
// Tests reach the settle func through mock.Arguments in a Run hook.
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment, settle port.SettleFunc) error {
	args := m.Called(ctx, payment, settle)
	return args.Error(0)
}

func (m *MockPaymentRepo) GetByID(ctx context.Context, companyID, paymentID uuid.UUID) (*domain.Payment, error) {
	args := m.Called(ctx, companyID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepo) List(ctx context.Context, companyID uuid.UUID, filter port.PaymentFilter) ([]domain.Payment, int, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Payment), args.Int(1), args.Error(2)
}

func (m *MockPaymentRepo) ListByParty(ctx context.Context, companyID, partyID uuid.UUID) ([]domain.Payment, error) {
	args := m.Called(ctx, companyID, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepo) Delete(ctx context.Context, companyID, paymentID uuid.UUID, settle port.SettleFunc) error {
	args := m.Called(ctx, companyID, paymentID, settle)
	return args.Error(0)
}
