package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billbook/internal/domain"
)

// MockReportRepo is a mock implementation of port.ReportRepository.
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) DocumentTotals(ctx context.Context, companyID uuid.UUID, period domain.PeriodFilter) ([]domain.DocumentTypeTotals, error) {
	args := m.Called(ctx, companyID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentTypeTotals), args.Error(1)
}

func (m *MockReportRepo) PaymentTotals(ctx context.Context, companyID uuid.UUID, period domain.PeriodFilter) ([]domain.PaymentTotals, error) {
	args := m.Called(ctx, companyID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentTotals), args.Error(1)
}
