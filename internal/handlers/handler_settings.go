package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/business_dashboard/internal/apperrors"
	portssvc "github.com/SscSPs/business_dashboard/internal/core/ports/services"
	"github.com/SscSPs/business_dashboard/internal/dto"
	"github.com/SscSPs/business_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

var errMissingUser = apperrors.NewAppError(http.StatusUnauthorized, "user ID not found in context", apperrors.ErrUnauthorized)

// settingsHandler handles HTTP requests for operator settings.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(svc portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: svc}
}

// registerSettingsRoutes registers routes for operator settings.
func registerSettingsRoutes(rg *gin.RouterGroup, svc portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(svc)

	settings := rg.Group("/settings")
	{
		settings.GET("/exchange-rate", h.getManualRate)
		settings.PUT("/exchange-rate", h.setManualRate)
		settings.DELETE("/exchange-rate", h.clearManualRate)
	}
}

// getManualRate godoc
// @Summary Get the manual exchange rate
// @Description Returns the operator-entered USD rate, or a null rate when none is set
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.ManualRateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve manual exchange rate"
// @Security BearerAuth
// @Router /settings/exchange-rate [get]
func (h *settingsHandler) getManualRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	setting, err := h.settingsService.GetManualRate(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusOK, dto.ToManualRateResponse(nil))
			return
		}
		respondError(c, logger, err, "Failed to retrieve manual exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToManualRateResponse(setting))
}

// setManualRate godoc
// @Summary Set the manual exchange rate
// @Description Stores an operator-entered USD rate used when no live quote is available
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   rate body dto.SetManualRateRequest true "Manual rate"
// @Success 200 {object} dto.ManualRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save manual exchange rate"
// @Security BearerAuth
// @Router /settings/exchange-rate [put]
func (h *settingsHandler) setManualRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetManualRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetManualRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, logger, errMissingUser, "Unauthorized")
		return
	}

	setting, err := h.settingsService.SetManualRate(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to save manual exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToManualRateResponse(setting))
}

// clearManualRate godoc
// @Summary Clear the manual exchange rate
// @Tags settings
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to clear manual exchange rate"
// @Security BearerAuth
// @Router /settings/exchange-rate [delete]
func (h *settingsHandler) clearManualRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, logger, errMissingUser, "Unauthorized")
		return
	}

	if err := h.settingsService.ClearManualRate(c.Request.Context(), userID); err != nil {
		respondError(c, logger, err, "Failed to clear manual exchange rate")
		return
	}

	c.Status(http.StatusNoContent)
}
