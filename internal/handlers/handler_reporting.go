package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/hesabdar/internal/core/ports/services"
	"github.com/SscSPs/hesabdar/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/ledger/:accountID", h.getLedger)
		reportingGroup.GET("/dashboard", h.getDashboard)
	}
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Sums debits and credits of every active account over all entries
// @Tags reports
// @Produce json
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 500 {object} ErrorResponse "Failed to generate trial balance"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	report, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to generate trial balance")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getLedger godoc
// @Summary Account ledger
// @Description Lists an account's lines in date order with a running balance
// @Tags reports
// @Produce json
// @Param accountID path int true "Account ID"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to generate ledger"
// @Security BearerAuth
// @Router /reports/ledger/{accountID} [get]
func (h *reportingHandler) getLedger(c *gin.Context) {
	accountID, ok := parseIDParam(c, "accountID")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid account ID"})
		return
	}

	var params dto.LedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	ledger, err := h.reportingService.Ledger(c.Request.Context(), accountID, params.StartDate, params.EndDate)
	if err != nil {
		respondError(c, err, "Failed to generate ledger")
		return
	}
	c.JSON(http.StatusOK, ledger)
}

// getDashboard godoc
// @Summary Dashboard statistics
// @Description Entry and account counts, overall totals and the most recent entries
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} ErrorResponse "Failed to load dashboard"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	stats, err := h.reportingService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(stats))
}
