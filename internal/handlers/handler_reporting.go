package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/business_dashboard/internal/core/ports/services"
	"github.com/SscSPs/business_dashboard/internal/dto"
	"github.com/SscSPs/business_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reporting handler
func newReportingHandler(reportingService portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// registerReportingRoutes registers the reporting routes
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/financial", h.getFinancialReport)
	}
}

// getFinancialReport godoc
// @Summary Get the financial report
// @Description Revenue and expense by month, revenue by client and profit by project, normalized to the reporting currency
// @Tags reports
// @Produce json
// @Success 200 {object} dto.FinancialReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate financial report"
// @Security BearerAuth
// @Router /reports/financial [get]
func (h *reportingHandler) getFinancialReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.FinancialReport(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to generate financial report")
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialReportResponse(report))
}
