package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/business_dashboard/internal/core/ports/services"
	"github.com/SscSPs/business_dashboard/internal/dto"
	"github.com/SscSPs/business_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardService
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardService) {
	h := &dashboardHandler{dashboardService: dashboardService}
	rg.GET("/dashboard/stats", h.getStats)
}

// getStats godoc
// @Summary Get dashboard statistics
// @Description Project counters, all-time revenue and expenses, hours, deadline risk and a twelve month series. currencyRateSource tells whether the figures rest on a live rate.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute dashboard stats"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute dashboard stats")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}
