package handler

import (
	"github.com/gin-gonic/gin"

	"billbook/internal/service"
)

// ReportHandler handles reporting endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// BalanceSheet handles GET /api/v1/reports/balance-sheet
// @Summary Balance sheet
// @Description Sales, purchases, GST and outstanding balances over a period, built from stored totals
// @Tags reports
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} Response{data=domain.BalanceSheet} "Balance sheet"
// @Failure 400 {object} ErrorResponseBody "Invalid date"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *ReportHandler) BalanceSheet(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	sheet, err := h.reportService.BalanceSheet(c.Request.Context(), s.CompanyID, period)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, sheet)
}
