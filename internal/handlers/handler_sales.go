package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
	"github.com/SscSPs/produce_ledger/internal/dto"
	"github.com/SscSPs/produce_ledger/internal/export"
	"github.com/gin-gonic/gin"
)

// salesHandler handles HTTP requests related to sales.
type salesHandler struct {
	salesService   portssvc.SalesSvcFacade
	summaryService portssvc.SummarySvcFacade
}

func newSalesHandler(ss portssvc.SalesSvcFacade, sum portssvc.SummarySvcFacade) *salesHandler {
	return &salesHandler{salesService: ss, summaryService: sum}
}

// RegisterSalesRoutes registers routes related to sales.
func RegisterSalesRoutes(rg *gin.RouterGroup, salesService portssvc.SalesSvcFacade, summaryService portssvc.SummarySvcFacade) {
	h := newSalesHandler(salesService, summaryService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.recordSale)
		sales.GET("", h.listSales)
		sales.GET("/export", h.exportSales)
		sales.GET("/:id", h.getSale)
		sales.DELETE("/:id", h.deleteSale)
	}
}

// recordSale godoc
// @Summary Record a sale
// @Description Records a sale and applies its stock and receivable side effects. Set legacy to send the four-field form.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.RecordSaleRequest true "Sale details"
// @Success 201 {object} dto.RecordSaleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record sale"
// @Router /sales [post]
func (h *salesHandler) recordSale(c *gin.Context) {
	logger := requestLogger(c)
	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "RecordSale")
		return
	}

	logger = logger.With(slog.String("vendor_name", req.VendorName), slog.Bool("legacy", req.Legacy))
	logger.Info("Received request to record sale", slog.String("commodity", req.Commodity))

	id, err := h.salesService.RecordSale(c.Request.Context(), req.ToSaleRequest())
	if err != nil {
		respondError(c, logger, err, "record sale")
		return
	}

	logger.Info("Sale recorded successfully", slog.Int64("sale_id", id))
	c.JSON(http.StatusCreated, dto.RecordSaleResponse{ID: id})
}

// getSale godoc
// @Summary Get a sale by ID
// @Tags sales
// @Produce  json
// @Param   id path int true "Sale ID"
// @Success 200 {object} domain.Sale
// @Failure 400 {object} map[string]string "Invalid sale ID"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to retrieve sale"
// @Router /sales/{id} [get]
func (h *salesHandler) getSale(c *gin.Context) {
	logger := requestLogger(c)
	id, ok := parseSaleID(c, logger)
	if !ok {
		return
	}

	sale, err := h.salesService.GetSale(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger.With(slog.Int64("sale_id", id)), err, "retrieve sale")
		return
	}
	c.JSON(http.StatusOK, sale)
}

// deleteSale godoc
// @Summary Delete a sale
// @Description Deletes a sale and reverses its stock consumption and vendor charge
// @Tags sales
// @Produce  json
// @Param   id path int true "Sale ID"
// @Success 200 {object} dto.DeleteSaleResponse
// @Failure 400 {object} map[string]string "Invalid sale ID"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to delete sale"
// @Router /sales/{id} [delete]
func (h *salesHandler) deleteSale(c *gin.Context) {
	logger := requestLogger(c)
	id, ok := parseSaleID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("sale_id", id))
	logger.Info("Received request to delete sale")

	deleted, err := h.salesService.DeleteSale(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "delete sale")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteSaleResponse{Deleted: deleted})
}

// listSales godoc
// @Summary List recent sales
// @Description Pages through sales newest first. Pass nextToken from the previous page to continue.
// @Tags sales
// @Produce  json
// @Param   limit query int false "Page size (max 500)" default(100)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list sales"
// @Router /sales [get]
func (h *salesHandler) listSales(c *gin.Context) {
	logger := requestLogger(c)
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "ListSales query")
		return
	}

	page, err := h.summaryService.RecentSales(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "list sales")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSalesResponse(page))
}

// exportSales godoc
// @Summary Export sales as CSV
// @Description Exports the sales in a date range, with the same filters as the range summary
// @Tags sales
// @Produce  text/csv
// @Param   start query string true "Start date (YYYY-MM-DD)"
// @Param   end query string true "End date (YYYY-MM-DD)"
// @Param   commodity query string false "Commodity"
// @Param   status query string false "Payment status"
// @Param   method query string false "Payment method"
// @Param   vendor query string false "Vendor name contains"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to export sales"
// @Router /sales/export [get]
func (h *salesHandler) exportSales(c *gin.Context) {
	logger := requestLogger(c)
	var params dto.RangeSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "ExportSales query")
		return
	}

	report, err := h.summaryService.DateRangeSummary(c.Request.Context(), params.Start, params.End, params.ToFilter())
	if err != nil {
		respondError(c, logger, err, "export sales")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteSalesCSV(&buf, report.Sales); err != nil {
		respondError(c, logger, err, "write sales CSV")
		return
	}

	logger.Info("Exported sales", slog.Int("rows", len(report.Sales)))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="sales_%s_%s.csv"`, params.Start, params.End))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func parseSaleID(c *gin.Context, logger *slog.Logger) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.Warn("Invalid sale ID", slog.String("id", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale ID"})
		return 0, false
	}
	return id, true
}
