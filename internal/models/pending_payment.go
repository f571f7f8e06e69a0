package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PendingPayment mirrors a row of the pending_payments table.
type PendingPayment struct {
	ID                  int64
	VendorName          string
	TotalDueAmount      decimal.Decimal
	LastTransactionDate string
	PaymentDueDate      *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
