package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billbook/internal/domain"
	"billbook/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{domain.ErrCompanyInactive, http.StatusForbidden, "COMPANY_INACTIVE"},
		{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{domain.ErrDuplicateCompanySlug, http.StatusConflict, "DUPLICATE_SLUG"},
		{domain.ErrPartyNotFound, http.StatusNotFound, "PARTY_NOT_FOUND"},
		{domain.ErrDuplicateDocNumber, http.StatusConflict, "DUPLICATE_DOCUMENT_NUMBER"},
		{domain.ErrPaymentMismatch, http.StatusBadRequest, "PAYMENT_MISMATCH"},
		{domain.ErrPartyEmailMissing, http.StatusBadRequest, "PARTY_EMAIL_MISSING"},
		{domain.ErrPartyChangeLocked, http.StatusConflict, "PARTY_LOCKED"},
		{fmt.Errorf("documentRepo.GetByID: %w", domain.ErrDocumentNotFound), http.StatusNotFound, "DOCUMENT_NOT_FOUND"},
		{errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code, _ := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestHandleError_ValidationErrorListsFields(t *testing.T) {
	c, w := newContext(t, http.MethodPost, "/", nil, nil)
	verr := &domain.ValidationError{}
	verr.Add("party", "select a party")
	verr.Add("lines[0].quantity", "quantity must be greater than zero")

	handler.HandleError(c, fmt.Errorf("documentService.Create: %w", verr))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	require.Len(t, resp.Error.Fields, 2)
	assert.Equal(t, "party", resp.Error.Fields[0].Field)
	assert.Equal(t, "lines[0].quantity", resp.Error.Fields[1].Field)
}
