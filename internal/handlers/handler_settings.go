package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Corely-AI/corely-ledger/internal/core/ports/services"
	"github.com/Corely-AI/corely-ledger/internal/dto"
	"github.com/Corely-AI/corely-ledger/internal/middleware"
)

// settingsHandler handles HTTP requests for tenant accounting configuration.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(settingsService portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: settingsService}
}

// registerSettingsRoutes registers the /settings routes.
func registerSettingsRoutes(group *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)
	settings := group.Group("/settings")
	{
		settings.POST("/setup", h.setupAccounting)
		settings.GET("", h.getSettings)
		settings.GET("/status", h.getSetupStatus)
		settings.PUT("", h.updateSettings)
	}
}

// setupAccounting godoc
// @Summary Set up accounting for the tenant
// @Description Creates the tenant's settings record with base currency, fiscal year start and numbering prefixes
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.SetupAccountingRequest true "Initial configuration"
// @Success 201 {object} dto.SettingsResponse
// @Failure 409 {object} map[string]string "Accounting already set up"
// @Router /settings/setup [post]
func (h *settingsHandler) setupAccounting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetupAccountingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for setupAccounting", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tenantID, userID, ok := callerIdentity(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.SetupAccounting(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to set up accounting")
		return
	}

	logger.Info("Accounting set up", slog.String("base_currency", settings.BaseCurrency))
	c.JSON(http.StatusCreated, dto.ToSettingsResponse(settings))
}

// getSettings godoc
// @Summary Get the tenant's accounting settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 404 {object} map[string]string "Accounting not set up"
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// getSetupStatus godoc
// @Summary Report whether accounting is set up for the tenant
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SetupStatusResponse
// @Router /settings/status [get]
func (h *settingsHandler) getSetupStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	status, err := h.settingsService.GetSetupStatus(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve setup status")
		return
	}
	c.JSON(http.StatusOK, status)
}

// updateSettings godoc
// @Summary Update the tenant's accounting settings
// @Description Mutates configuration flags and numbering prefixes. Counters only advance through allocation.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSettingsRequest true "Mutable configuration"
// @Success 200 {object} dto.SettingsResponse
// @Failure 404 {object} map[string]string "Accounting not set up"
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	tenantID, userID, ok := callerIdentity(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update settings")
		return
	}

	logger.Info("Settings updated")
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}
