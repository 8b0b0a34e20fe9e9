package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billbook/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendDocumentSummary(ctx context.Context, toEmail, toName string, summary domain.DocumentSummary) error {
	args := m.Called(ctx, toEmail, toName, summary)
	return args.Error(0)
}
