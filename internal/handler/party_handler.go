package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"billbook/internal/csvexport"
	"billbook/internal/domain"
	"billbook/internal/port"
	"billbook/internal/service"
)

// PartyHandler handles customer and supplier endpoints.
type PartyHandler struct {
	partyService  service.PartyService
	reportService service.ReportService
}

// NewPartyHandler creates a new PartyHandler.
func NewPartyHandler(partyService service.PartyService, reportService service.ReportService) *PartyHandler {
	return &PartyHandler{partyService: partyService, reportService: reportService}
}

// Create handles POST /api/v1/parties
// @Summary Create a party
// @Tags parties
// @Accept json
// @Produce json
// @Param body body service.PartyInput true "Party details"
// @Success 201 {object} Response{data=domain.Party} "Created"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /parties [post]
func (h *PartyHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var input service.PartyInput
	if !bindJSON(c, &input) {
		return
	}

	party, err := h.partyService.Create(c.Request.Context(), s.CompanyID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, party)
}

// List handles GET /api/v1/parties
// @Summary List parties
// @Tags parties
// @Produce json
// @Param q query string false "Name, mobile or GSTIN search"
// @Param party_type query string false "customer, supplier or both"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Party,meta=PagMeta} "Parties"
// @Security BearerAuth
// @Router /parties [get]
func (h *PartyHandler) List(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)
	filter := port.PartyFilter{
		Query:     strings.TrimSpace(c.Query("q")),
		PartyType: domain.PartyType(c.Query("party_type")),
		Offset:    offset,
		Limit:     limit,
	}

	parties, total, err := h.partyService.List(c.Request.Context(), s.CompanyID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, parties, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/parties/:id
// @Summary Get a party
// @Tags parties
// @Produce json
// @Param id path string true "Party ID (UUID)"
// @Success 200 {object} Response{data=domain.Party} "Party"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /parties/{id} [get]
func (h *PartyHandler) GetByID(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "party")
	if !ok {
		return
	}

	party, err := h.partyService.GetByID(c.Request.Context(), s.CompanyID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, party)
}

// Update handles PUT /api/v1/parties/:id
// @Summary Update a party
// @Tags parties
// @Accept json
// @Produce json
// @Param id path string true "Party ID (UUID)"
// @Param body body service.PartyInput true "Party details"
// @Success 200 {object} Response{data=domain.Party} "Updated"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /parties/{id} [put]
func (h *PartyHandler) Update(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "party")
	if !ok {
		return
	}
	var input service.PartyInput
	if !bindJSON(c, &input) {
		return
	}

	party, err := h.partyService.Update(c.Request.Context(), s.CompanyID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, party)
}

// Delete handles DELETE /api/v1/parties/:id
// @Summary Delete a party
// @Tags parties
// @Produce json
// @Param id path string true "Party ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /parties/{id} [delete]
func (h *PartyHandler) Delete(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "party")
	if !ok {
		return
	}

	if err := h.partyService.Delete(c.Request.Context(), s.CompanyID, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "party deleted"})
}

// Statement handles GET /api/v1/parties/:id/statement
// @Summary Party statement
// @Description Every document and payment for the party with a running balance. format=csv downloads it.
// @Tags parties
// @Produce json,text/csv
// @Param id path string true "Party ID (UUID)"
// @Param format query string false "json (default) or csv"
// @Success 200 {object} Response{data=domain.PartyStatement} "Statement"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /parties/{id}/statement [get]
func (h *PartyHandler) Statement(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "party")
	if !ok {
		return
	}

	stmt, err := h.reportService.PartyStatement(c.Request.Context(), s.CompanyID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	if c.Query("format") != "csv" {
		RespondOK(c, stmt)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+csvexport.BuildFilename(stmt.Party.Name, time.Now())+`"`)
	c.Status(http.StatusOK)
	_, _ = c.Writer.Write(csvexport.BOM)

	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		log.Error().Err(err).Str("party_id", id.String()).Msg("partyHandler.Statement: writing csv header")
		return
	}
	if err := w.WriteStatement(stmt); err != nil {
		log.Error().Err(err).Str("party_id", id.String()).Msg("partyHandler.Statement: writing csv rows")
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Error().Err(err).Str("party_id", id.String()).Msg("partyHandler.Statement: flushing csv")
	}
}
