package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PendingPayment is the running receivable for one vendor.
type PendingPayment struct {
	ID                  int64           `json:"id"`
	VendorName          string          `json:"vendorName"`
	TotalDueAmount      decimal.Decimal `json:"totalDueAmount"`
	LastTransactionDate string          `json:"lastTransactionDate"`
	PaymentDueDate      string          `json:"paymentDueDate,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}
