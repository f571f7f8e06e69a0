package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
	"github.com/SscSPs/produce_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// RegisterPaymentRoutes registers routes related to vendor receivables.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := &paymentHandler{paymentService: paymentService}

	payments := rg.Group("/payments")
	{
		payments.POST("/charges", h.applyCharge)
		payments.POST("/receipts", h.recordReceipt)
		payments.GET("/outstanding", h.listOutstanding)
		payments.GET("/vendors/:vendor", h.getVendorBalance)
	}
}

// applyCharge godoc
// @Summary Adjust a vendor balance
// @Description Adds amount to the vendor's balance. Negative amounts reduce it, never below zero.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   charge body dto.ChargeRequest true "Charge details"
// @Success 204 "Balance updated"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to apply charge"
// @Router /payments/charges [post]
func (h *paymentHandler) applyCharge(c *gin.Context) {
	logger := requestLogger(c)
	var req dto.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "ApplyCharge")
		return
	}
	logger = logger.With(slog.String("vendor_name", req.VendorName), slog.String("amount", req.Amount.String()))

	if err := h.paymentService.ApplyCharge(c.Request.Context(), req.VendorName, req.Amount, req.Date); err != nil {
		respondError(c, logger, err, "apply charge")
		return
	}
	logger.Info("Vendor balance adjusted")
	c.Status(http.StatusNoContent)
}

// recordReceipt godoc
// @Summary Record a payment received
// @Description Subtracts a receipt from the vendor's balance. Vendors with no balance on file are left untouched.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   receipt body dto.PaymentReceivedRequest true "Receipt details"
// @Success 200 {object} dto.PaymentReceivedResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Router /payments/receipts [post]
func (h *paymentHandler) recordReceipt(c *gin.Context) {
	logger := requestLogger(c)
	var req dto.PaymentReceivedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "RecordPaymentReceived")
		return
	}
	logger = logger.With(slog.String("vendor_name", req.VendorName))

	payment, err := h.paymentService.RecordPaymentReceived(c.Request.Context(), req.VendorName, req.AmountPaid)
	if err != nil {
		respondError(c, logger, err, "record payment")
		return
	}
	if payment == nil {
		logger.Info("No receivable on file for vendor, payment not applied")
	}
	c.JSON(http.StatusOK, dto.PaymentReceivedResponse{Recorded: payment != nil, Payment: payment})
}

// listOutstanding godoc
// @Summary List outstanding receivables
// @Tags payments
// @Produce  json
// @Success 200 {object} dto.OutstandingPaymentsResponse
// @Failure 500 {object} map[string]string "Failed to list outstanding payments"
// @Router /payments/outstanding [get]
func (h *paymentHandler) listOutstanding(c *gin.Context) {
	logger := requestLogger(c)
	payments, err := h.paymentService.ListOutstanding(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list outstanding payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToOutstandingPaymentsResponse(payments))
}

// getVendorBalance godoc
// @Summary Get a vendor's balance
// @Tags payments
// @Produce  json
// @Param   vendor path string true "Vendor name"
// @Success 200 {object} domain.PendingPayment
// @Failure 404 {object} map[string]string "Vendor has no balance on file"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Router /payments/vendors/{vendor} [get]
func (h *paymentHandler) getVendorBalance(c *gin.Context) {
	logger := requestLogger(c)
	vendor := c.Param("vendor")

	payment, err := h.paymentService.GetVendorBalance(c.Request.Context(), vendor)
	if err != nil {
		respondError(c, logger.With(slog.String("vendor_name", vendor)), err, "retrieve vendor balance")
		return
	}
	c.JSON(http.StatusOK, payment)
}
