package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"billbook/internal/domain"
	"billbook/internal/service"
)

const dateLayout = "2006-01-02"

// DocumentHandler handles billing document endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Preview handles POST /api/v1/documents/preview
// @Summary Preview document totals
// @Description Runs the totals engine on an unsaved document. Nothing is stored.
// @Tags documents
// @Accept json
// @Produce json
// @Param body body service.DocumentInput true "Document form"
// @Success 200 {object} Response{data=totals.Result} "Calculated totals"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /documents/preview [post]
func (h *DocumentHandler) Preview(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var input service.DocumentInput
	if !bindJSON(c, &input) {
		return
	}

	result, err := h.documentService.Preview(c.Request.Context(), s, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Create handles POST /api/v1/documents
// @Summary Create a document
// @Description Validates, calculates and stores an invoice, note or return and moves stock
// @Tags documents
// @Accept json
// @Produce json
// @Param body body service.DocumentInput true "Document form"
// @Success 201 {object} Response{data=domain.Document} "Created"
// @Failure 404 {object} ErrorResponseBody "Party or item not found"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /documents [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var input service.DocumentInput
	if !bindJSON(c, &input) {
		return
	}

	doc, err := h.documentService.Create(c.Request.Context(), s, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, doc)
}

// GetByID handles GET /api/v1/documents/:id
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=domain.Document} "Document with lines"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetByID(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "document")
	if !ok {
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), s.CompanyID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// List handles GET /api/v1/documents
// @Summary List documents
// @Tags documents
// @Produce json
// @Param type query string false "Document type"
// @Param party_id query string false "Party ID (UUID)"
// @Param status query string false "paid, partial or unpaid"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Document,meta=PagMeta} "Documents"
// @Failure 400 {object} ErrorResponseBody "Invalid filter"
// @Security BearerAuth
// @Router /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	filter := domain.DocumentFilter{
		DocumentType: domain.DocumentType(c.Query("type")),
		Status:       domain.PaymentStatus(c.Query("status")),
		Offset:       offset,
		Limit:        limit,
	}
	if filter.DocumentType != "" && !domain.ValidDocumentTypes[filter.DocumentType] {
		HandleError(c, domain.ErrInvalidDocumentType)
		return
	}
	if filter.PartyID, ok = queryID(c, "party_id"); !ok {
		return
	}
	period, ok := parsePeriod(c)
	if !ok {
		return
	}
	filter.From, filter.To = period.From, period.To

	docs, total, err := h.documentService.List(c.Request.Context(), s.CompanyID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, docs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/documents/:id
// @Summary Update a document
// @Description Recalculates totals and nets stock against the previous lines. Type and number are kept.
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param body body service.DocumentInput true "Document form"
// @Success 200 {object} Response{data=domain.Document} "Updated"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Failure 409 {object} ErrorResponseBody "Party locked by linked payments"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /documents/{id} [put]
func (h *DocumentHandler) Update(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "document")
	if !ok {
		return
	}
	var input service.DocumentInput
	if !bindJSON(c, &input) {
		return
	}

	doc, err := h.documentService.Update(c.Request.Context(), s, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// Delete handles DELETE /api/v1/documents/:id
// @Summary Delete a document
// @Description Removes the document and reverses its stock movement
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "document")
	if !ok {
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), s.CompanyID, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "document deleted"})
}

// Email handles POST /api/v1/documents/:id/email
// @Summary Email a document summary to its party
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Sent"
// @Failure 400 {object} ErrorResponseBody "Party has no email"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /documents/{id}/email [post]
func (h *DocumentHandler) Email(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "document")
	if !ok {
		return
	}

	if err := h.documentService.Email(c.Request.Context(), s.CompanyID, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "document emailed"})
}

// parsePeriod reads optional from/to dates. Both bounds are inclusive.
func parsePeriod(c *gin.Context) (domain.PeriodFilter, bool) {
	var period domain.PeriodFilter
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_DATE", "from must be YYYY-MM-DD")
			return period, false
		}
		period.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(dateLayout, raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_DATE", "to must be YYYY-MM-DD")
			return period, false
		}
		period.To = &to
	}
	if period.From != nil && period.To != nil && period.To.Before(*period.From) {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "to must not be before from")
		return period, false
	}
	return period, true
}
