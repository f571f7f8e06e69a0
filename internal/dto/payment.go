package dto

import (
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ChargeRequest adjusts a vendor's balance directly. Negative amounts reduce it.
type ChargeRequest struct {
	VendorName string          `json:"vendorName" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date" binding:"required"`
}

// PaymentReceivedRequest records money collected from a vendor.
type PaymentReceivedRequest struct {
	VendorName string          `json:"vendorName" binding:"required"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
}

// PaymentReceivedResponse reports the vendor's balance after a receipt.
// Recorded is false when the vendor had no receivable on file.
type PaymentReceivedResponse struct {
	Recorded bool                   `json:"recorded"`
	Payment  *domain.PendingPayment `json:"payment,omitempty"`
}

// OutstandingPaymentsResponse lists vendors that still owe money.
type OutstandingPaymentsResponse struct {
	Payments    []domain.PendingPayment `json:"payments"`
	TotalOwed   decimal.Decimal         `json:"totalOwed"`
	VendorCount int                     `json:"vendorCount"`
}

func ToOutstandingPaymentsResponse(payments []domain.PendingPayment) OutstandingPaymentsResponse {
	if payments == nil {
		payments = []domain.PendingPayment{}
	}
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.TotalDueAmount)
	}
	return OutstandingPaymentsResponse{Payments: payments, TotalOwed: total, VendorCount: len(payments)}
}
