package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/business_dashboard/internal/core/ports/services"
	"github.com/SscSPs/business_dashboard/internal/dto"
	"github.com/SscSPs/business_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to the current exchange rate.
type exchangeRateHandler struct {
	rates             portssvc.RateProvider
	reportingCurrency string
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(rates portssvc.RateProvider, reportingCurrency string) *exchangeRateHandler {
	return &exchangeRateHandler{
		rates:             rates,
		reportingCurrency: reportingCurrency,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rates portssvc.RateProvider, reportingCurrency string) {
	h := newExchangeRateHandler(rates, reportingCurrency)
	rg.GET("/exchange-rate", h.getCurrentRate)
}

// getCurrentRate godoc
// @Summary Get the current exchange rate
// @Description Returns the USD rate used to normalize amounts, with its source and expiry. Never fails: when no live quote is available a manual or fallback rate is returned.
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /exchange-rate [get]
func (h *exchangeRateHandler) getCurrentRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rate := h.rates.GetCurrentRate(c.Request.Context())

	logger.Debug("Resolved current exchange rate",
		slog.String("source", string(rate.Source)),
		slog.String("rate", rate.Rate.String()))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate, h.reportingCurrency))
}
