package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
	"github.com/SscSPs/produce_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// RegisterInventoryRoutes registers routes related to stock positions.
func RegisterInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := &inventoryHandler{inventoryService: inventoryService}

	inventory := rg.Group("/inventory")
	{
		inventory.POST("", h.intake)
		inventory.GET("", h.getByDate)
		inventory.POST("/carry-over", h.carryOver)
	}
}

// intake godoc
// @Summary Record stock intake
// @Description Creates or replaces the stock record for a commodity on a date
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   intake body dto.IntakeRequest true "Intake details"
// @Success 201 {object} domain.InventoryRecord
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record intake"
// @Router /inventory [post]
func (h *inventoryHandler) intake(c *gin.Context) {
	logger := requestLogger(c)
	var req dto.IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "Intake")
		return
	}
	logger = logger.With(slog.String("commodity", req.Commodity), slog.String("date", req.Date))

	record, err := h.inventoryService.Intake(c.Request.Context(), req.ToIntakeInput())
	if err != nil {
		respondError(c, logger, err, "record intake")
		return
	}
	logger.Info("Stock intake recorded", slog.Int64("inventory_id", record.ID))
	c.JSON(http.StatusCreated, record)
}

// getByDate godoc
// @Summary List stock for a day
// @Tags inventory
// @Produce  json
// @Param   date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.InventoryListResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to list inventory"
// @Router /inventory [get]
func (h *inventoryHandler) getByDate(c *gin.Context) {
	logger := requestLogger(c)
	date := c.Query("date")

	records, err := h.inventoryService.GetByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, logger.With(slog.String("date", date)), err, "list inventory")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryListResponse(date, records))
}

// carryOver godoc
// @Summary Carry leftover stock forward
// @Description Copies each commodity's remaining stock on fromDate into a new record on toDate
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   carryOver body dto.CarryOverRequest true "Dates"
// @Success 200 {object} dto.InventoryListResponse
// @Failure 400 {object} map[string]string "Invalid dates"
// @Failure 500 {object} map[string]string "Failed to carry stock over"
// @Router /inventory/carry-over [post]
func (h *inventoryHandler) carryOver(c *gin.Context) {
	logger := requestLogger(c)
	var req dto.CarryOverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "CarryOver")
		return
	}
	logger = logger.With(slog.String("from_date", req.FromDate), slog.String("to_date", req.ToDate))

	records, err := h.inventoryService.CarryOver(c.Request.Context(), req.FromDate, req.ToDate)
	if err != nil {
		respondError(c, logger, err, "carry stock over")
		return
	}
	logger.Info("Stock carried over", slog.Int("records", len(records)))
	c.JSON(http.StatusOK, dto.ToInventoryListResponse(req.ToDate, records))
}
