package handler

import (
	"github.com/gin-gonic/gin"

	"billbook/internal/domain"
	"billbook/internal/port"
	"billbook/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create handles POST /api/v1/payments
// @Summary Record a payment
// @Description Records money in or out. When document_id is set the invoice's received amount, balance and status are updated.
// @Tags payments
// @Accept json
// @Produce json
// @Param body body service.PaymentInput true "Payment details"
// @Success 201 {object} Response{data=domain.Payment} "Created"
// @Failure 400 {object} ErrorResponseBody "Payment does not settle the document"
// @Failure 404 {object} ErrorResponseBody "Party or document not found"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var input service.PaymentInput
	if !bindJSON(c, &input) {
		return
	}

	payment, err := h.paymentService.Create(c.Request.Context(), s, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, payment)
}

// List handles GET /api/v1/payments
// @Summary List payments
// @Tags payments
// @Produce json
// @Param party_id query string false "Party ID (UUID)"
// @Param document_id query string false "Document ID (UUID)"
// @Param direction query string false "in or out"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Payment,meta=PagMeta} "Payments"
// @Security BearerAuth
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)
	filter := port.PaymentFilter{
		Direction: domain.PaymentDirection(c.Query("direction")),
		Offset:    offset,
		Limit:     limit,
	}
	if filter.PartyID, ok = queryID(c, "party_id"); !ok {
		return
	}
	if filter.DocumentID, ok = queryID(c, "document_id"); !ok {
		return
	}

	payments, total, err := h.paymentService.List(c.Request.Context(), s.CompanyID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, payments, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/payments/:id
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID (UUID)"
// @Success 200 {object} Response{data=domain.Payment} "Payment"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "payment")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetByID(c.Request.Context(), s.CompanyID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, payment)
}

// Delete handles DELETE /api/v1/payments/:id
// @Summary Delete a payment
// @Description Removes the payment and reverses its effect on the linked invoice
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "payment")
	if !ok {
		return
	}

	if err := h.paymentService.Delete(c.Request.Context(), s.CompanyID, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "payment deleted"})
}
