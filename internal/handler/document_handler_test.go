package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billbook/internal/domain"
	"billbook/internal/handler"
	"billbook/internal/service"
	"billbook/internal/totals"
	"billbook/mocks"
)

func newDocumentHandler() (*handler.DocumentHandler, *mocks.MockDocumentService) {
	svc := new(mocks.MockDocumentService)
	return handler.NewDocumentHandler(svc), svc
}

func documentBody(partyID uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"document_type":         "sales_invoice",
		"party_id":              partyID,
		"overall_discount":      "10",
		"overall_discount_type": "percentage",
		"lines": []map[string]interface{}{
			{"name": "Basmati Rice 5kg", "quantity": "2", "unit_rate": 500, "tax_rate_label": "GST @ 18%"},
		},
	}
}

func TestDocumentHandler_Preview(t *testing.T) {
	h, svc := newDocumentHandler()
	s := testSession()
	partyID := uuid.New()
	result := &totals.Result{RoundedTotal: decimal.NewFromInt(1062)}

	svc.On("Preview", mock.Anything, s, mock.MatchedBy(func(in service.DocumentInput) bool {
		return in.PartyID == partyID &&
			len(in.Lines) == 1 &&
			in.Lines[0].Quantity.Equal(decimal.NewFromInt(2)) &&
			in.Lines[0].UnitRate.Equal(decimal.NewFromInt(500)) &&
			in.OverallDiscount.Equal(decimal.NewFromInt(10))
	})).Return(result, nil)

	c, w := newContext(t, http.MethodPost, "/api/v1/documents/preview", documentBody(partyID), &s)
	h.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := decode(t, w).Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1062", data["rounded_total"])
	svc.AssertExpectations(t)
}

func TestDocumentHandler_Preview_LenientNumbers(t *testing.T) {
	h, svc := newDocumentHandler()
	s := testSession()

	svc.On("Preview", mock.Anything, s, mock.MatchedBy(func(in service.DocumentInput) bool {
		return len(in.Lines) == 1 && in.Lines[0].Quantity.IsZero() && in.Lines[0].UnitRate.IsZero()
	})).Return(&totals.Result{}, nil)

	body := []byte(`{"document_type":"sales_invoice","lines":[{"name":"x","quantity":"abc","unit_rate":"-5"}]}`)
	c, w := newContext(t, http.MethodPost, "/api/v1/documents/preview", body, &s)
	h.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestDocumentHandler_Create_Success(t *testing.T) {
	h, svc := newDocumentHandler()
	s := testSession()
	partyID := uuid.New()
	doc := &domain.Document{ID: uuid.New(), DocumentNumber: "INV-1", DocumentType: domain.DocumentTypeSalesInvoice}

	svc.On("Create", mock.Anything, s, mock.AnythingOfType("service.DocumentInput")).Return(doc, nil)

	c, w := newContext(t, http.MethodPost, "/api/v1/documents", documentBody(partyID), &s)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestDocumentHandler_Create_ValidationFailed(t *testing.T) {
	h, svc := newDocumentHandler()
	s := testSession()
	verr := &domain.ValidationError{}
	verr.Add("party", "select a party")

	svc.On("Create", mock.Anything, s, mock.AnythingOfType("service.DocumentInput")).Return(nil, verr)

	c, w := newContext(t, http.MethodPost, "/api/v1/documents", documentBody(uuid.Nil), &s)
	h.Create(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode(t, w)
	require.Len(t, resp.Error.Fields, 1)
	assert.Equal(t, "select a party", resp.Error.Fields[0].Message)
}

func TestDocumentHandler_GetByID_InvalidID(t *testing.T) {
	h, svc := newDocumentHandler()
	s := testSession()

	c, w := newContext(t, http.MethodGet, "/api/v1/documents/nope", nil, &s)
	c.AddParam("id", "nope")
	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentHandler_GetByID_NotFound(t *testing.T) {
	h, svc := newDocumentHandler()
	s := testSession()
	id := uuid.New()
	svc.On("GetByID", mock.Anything, s.CompanyID, id).Return(nil, domain.ErrDocumentNotFound)

	c, w := newContext(t, http.MethodGet, "/api/v1/documents/"+id.String(), nil, &s)
	c.AddParam("id", id.String())
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentHandler_List_Filters(t *testing.T) {
	h, svc := newDocumentHandler()
	s := testSession()
	partyID := uuid.New()

	svc.On("List", mock.Anything, s.CompanyID, mock.MatchedBy(func(f domain.DocumentFilter) bool {
		return f.DocumentType == domain.DocumentTypeSalesInvoice &&
			f.Status == domain.PaymentStatusUnpaid &&
			f.PartyID != nil && *f.PartyID == partyID &&
			f.From != nil && f.From.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) &&
			f.To != nil && f.To.Equal(time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)) &&
			f.Offset == 0 && f.Limit == 50
	})).Return([]domain.Document{{ID: uuid.New()}}, 1, nil)

	target := "/api/v1/documents?type=sales_invoice&status=unpaid&party_id=" + partyID.String() +
		"&from=2025-04-01&to=2025-04-30&limit=50"
	c, w := newContext(t, http.MethodGet, target, nil, &s)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.Total)
	assert.Equal(t, 50, resp.Meta.Limit)
	svc.AssertExpectations(t)
}

func TestDocumentHandler_List_BadFilters(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"unknown type", "/api/v1/documents?type=quotation"},
		{"bad party", "/api/v1/documents?party_id=123"},
		{"bad date", "/api/v1/documents?from=01-04-2025"},
		{"reversed range", "/api/v1/documents?from=2025-05-01&to=2025-04-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newDocumentHandler()
			s := testSession()

			c, w := newContext(t, http.MethodGet, tt.target, nil, &s)
			h.List(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDocumentHandler_Update(t *testing.T) {
	h, svc := newDocumentHandler()
	s := testSession()
	id := uuid.New()
	svc.On("Update", mock.Anything, s, id, mock.AnythingOfType("service.DocumentInput")).
		Return(&domain.Document{ID: id}, nil)

	c, w := newContext(t, http.MethodPut, "/api/v1/documents/"+id.String(), documentBody(uuid.New()), &s)
	c.AddParam("id", id.String())
	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestDocumentHandler_Delete(t *testing.T) {
	h, svc := newDocumentHandler()
	s := testSession()
	id := uuid.New()
	svc.On("Delete", mock.Anything, s.CompanyID, id).Return(nil)

	c, w := newContext(t, http.MethodDelete, "/api/v1/documents/"+id.String(), nil, &s)
	c.AddParam("id", id.String())
	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestDocumentHandler_Email_PartyEmailMissing(t *testing.T) {
	h, svc := newDocumentHandler()
	s := testSession()
	id := uuid.New()
	svc.On("Email", mock.Anything, s.CompanyID, id).Return(domain.ErrPartyEmailMissing)

	c, w := newContext(t, http.MethodPost, "/api/v1/documents/"+id.String()+"/email", nil, &s)
	c.AddParam("id", id.String())
	h.Email(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PARTY_EMAIL_MISSING", decode(t, w).Error.Code)
}
