package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
	"github.com/SscSPs/produce_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// RegisterSettingsRoutes registers routes for key/value settings.
func RegisterSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := &settingsHandler{settingsService: settingsService}

	settings := rg.Group("/settings")
	{
		settings.GET("/:key", h.getSetting)
		settings.PUT("/:key", h.setSetting)
	}
}

// getSetting godoc
// @Summary Get a setting
// @Tags settings
// @Produce  json
// @Param   key path string true "Setting key"
// @Param   default query string false "Value returned when the key is not set"
// @Success 200 {object} dto.SettingResponse
// @Failure 500 {object} map[string]string "Failed to read setting"
// @Router /settings/{key} [get]
func (h *settingsHandler) getSetting(c *gin.Context) {
	key := c.Param("key")
	value, err := h.settingsService.GetSetting(c.Request.Context(), key, c.Query("default"))
	if err != nil {
		respondError(c, requestLogger(c).With(slog.String("key", key)), err, "read setting")
		return
	}
	c.JSON(http.StatusOK, dto.SettingResponse{Key: key, Value: value})
}

// setSetting godoc
// @Summary Update a setting
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   key path string true "Setting key"
// @Param   setting body dto.SetSettingRequest true "New value"
// @Success 200 {object} dto.SettingResponse
// @Failure 400 {object} map[string]string "Invalid value"
// @Failure 500 {object} map[string]string "Failed to save setting"
// @Router /settings/{key} [put]
func (h *settingsHandler) setSetting(c *gin.Context) {
	logger := requestLogger(c)
	key := c.Param("key")
	var req dto.SetSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "SetSetting")
		return
	}
	logger = logger.With(slog.String("key", key))

	if err := h.settingsService.SetSetting(c.Request.Context(), key, req.Value); err != nil {
		respondError(c, logger, err, "save setting")
		return
	}
	logger.Info("Setting updated")
	c.JSON(http.StatusOK, dto.SettingResponse{Key: key, Value: req.Value})
}
