package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
	"github.com/SscSPs/produce_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type commodityHandler struct {
	commodityService portssvc.CommoditySvcFacade
}

// RegisterCommodityRoutes registers routes for the commodity catalog.
func RegisterCommodityRoutes(rg *gin.RouterGroup, commodityService portssvc.CommoditySvcFacade) {
	h := &commodityHandler{commodityService: commodityService}

	commodities := rg.Group("/commodities")
	{
		commodities.GET("", h.listCommodities)
		commodities.POST("", h.addCommodity)
	}
}

// listCommodities godoc
// @Summary List active commodities
// @Tags commodities
// @Produce  json
// @Success 200 {object} dto.ListCommoditiesResponse
// @Failure 500 {object} map[string]string "Failed to list commodities"
// @Router /commodities [get]
func (h *commodityHandler) listCommodities(c *gin.Context) {
	types, err := h.commodityService.ListCommodityTypes(c.Request.Context())
	if err != nil {
		respondError(c, requestLogger(c), err, "list commodities")
		return
	}
	c.JSON(http.StatusOK, dto.ListCommoditiesResponse{Commodities: types})
}

// addCommodity godoc
// @Summary Add a commodity
// @Tags commodities
// @Accept  json
// @Produce  json
// @Param   commodity body dto.AddCommodityRequest true "Commodity"
// @Success 201 {object} domain.CommodityType
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Commodity already exists"
// @Failure 500 {object} map[string]string "Failed to add commodity"
// @Router /commodities [post]
func (h *commodityHandler) addCommodity(c *gin.Context) {
	logger := requestLogger(c)
	var req dto.AddCommodityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "AddCommodity")
		return
	}
	logger = logger.With(slog.String("commodity", req.Name))

	commodity, err := h.commodityService.AddCommodityType(c.Request.Context(), req.Name, req.DefaultUnit)
	if err != nil {
		respondError(c, logger, err, "add commodity")
		return
	}
	logger.Info("Commodity added", slog.Int64("commodity_id", commodity.ID))
	c.JSON(http.StatusCreated, commodity)
}
