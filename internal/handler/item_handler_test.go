package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"billbook/internal/domain"
	"billbook/internal/handler"
	"billbook/internal/service"
	"billbook/mocks"
)

func newItemHandler() (*handler.ItemHandler, *mocks.MockItemService) {
	svc := new(mocks.MockItemService)
	return handler.NewItemHandler(svc), svc
}

func TestItemHandler_Create(t *testing.T) {
	h, svc := newItemHandler()
	s := testSession()
	svc.On("Create", mock.Anything, s.CompanyID, mock.MatchedBy(func(in service.ItemInput) bool {
		return in.Name == "Ghee 1L" && in.SellingPrice.Equal(decimal.NewFromInt(1100)) && in.GSTRate == "GST @ 12%"
	})).Return(&domain.Item{ID: uuid.New(), Name: "Ghee 1L"}, nil)

	c, w := newContext(t, http.MethodPost, "/api/v1/items", map[string]interface{}{
		"name":          "Ghee 1L",
		"selling_price": "1,100",
		"gst_rate":      "GST @ 12%",
	}, &s)
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestItemHandler_Create_DuplicateCode(t *testing.T) {
	h, svc := newItemHandler()
	s := testSession()
	svc.On("Create", mock.Anything, s.CompanyID, mock.AnythingOfType("service.ItemInput")).
		Return(nil, domain.ErrDuplicateItemCode)

	c, w := newContext(t, http.MethodPost, "/api/v1/items", map[string]string{"name": "Ghee 1L", "code": "G1"}, &s)
	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestItemHandler_List(t *testing.T) {
	h, svc := newItemHandler()
	s := testSession()
	svc.On("List", mock.Anything, s.CompanyID, "rice", 0, 20).Return([]domain.Item{{Name: "Rice"}}, 1, nil)

	c, w := newContext(t, http.MethodGet, "/api/v1/items?q=rice", nil, &s)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestItemHandler_GetByID_NotFound(t *testing.T) {
	h, svc := newItemHandler()
	s := testSession()
	id := uuid.New()
	svc.On("GetByID", mock.Anything, s.CompanyID, id).Return(nil, domain.ErrItemNotFound)

	c, w := newContext(t, http.MethodGet, "/api/v1/items/"+id.String(), nil, &s)
	c.AddParam("id", id.String())
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ITEM_NOT_FOUND", decode(t, w).Error.Code)
}
