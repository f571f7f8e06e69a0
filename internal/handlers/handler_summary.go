package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
	"github.com/SscSPs/produce_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

// RegisterSummaryRoutes registers the reporting routes.
func RegisterSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := &summaryHandler{summaryService: summaryService}

	summary := rg.Group("/summary")
	{
		summary.GET("/today", h.today)
		summary.GET("/daily/:date", h.forDate)
		summary.GET("/range", h.dateRange)
		summary.GET("/all-time", h.allTime)
	}
}

// today godoc
// @Summary Today's summary
// @Description Sales totals, progress against the daily target and today's stock
// @Tags summary
// @Produce  json
// @Success 200 {object} domain.DailySummary
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Router /summary/today [get]
func (h *summaryHandler) today(c *gin.Context) {
	summary, err := h.summaryService.TodaysSummary(c.Request.Context())
	if err != nil {
		respondError(c, requestLogger(c), err, "build today's summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// forDate godoc
// @Summary Summary for a day
// @Tags summary
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} domain.DailySummary
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Router /summary/daily/{date} [get]
func (h *summaryHandler) forDate(c *gin.Context) {
	summary, err := h.summaryService.SummaryForDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		respondError(c, requestLogger(c), err, "build daily summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// dateRange godoc
// @Summary Date range report
// @Description Sales between start and end (inclusive) matching the optional filters, with totals
// @Tags summary
// @Produce  json
// @Param   start query string true "Start date (YYYY-MM-DD)"
// @Param   end query string true "End date (YYYY-MM-DD)"
// @Param   commodity query string false "Commodity"
// @Param   status query string false "Payment status (paid, pending)"
// @Param   method query string false "Payment method (Cash, Credit, UPI)"
// @Param   vendor query string false "Vendor name contains"
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /summary/range [get]
func (h *summaryHandler) dateRange(c *gin.Context) {
	logger := requestLogger(c)
	var params dto.RangeSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "DateRangeSummary query")
		return
	}

	report, err := h.summaryService.DateRangeSummary(c.Request.Context(), params.Start, params.End, params.ToFilter())
	if err != nil {
		respondError(c, logger, err, "build date range report")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesReportResponse(params.Start, params.End, report))
}

// allTime godoc
// @Summary All-time totals
// @Tags summary
// @Produce  json
// @Success 200 {object} domain.SalesTotals
// @Failure 500 {object} map[string]string "Failed to build totals"
// @Router /summary/all-time [get]
func (h *summaryHandler) allTime(c *gin.Context) {
	totals, err := h.summaryService.AllTimeSummary(c.Request.Context())
	if err != nil {
		respondError(c, requestLogger(c), err, "build all-time totals")
		return
	}
	c.JSON(http.StatusOK, totals)
}
