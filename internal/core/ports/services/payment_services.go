package services

import (
	"context"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentReaderSvc defines read operations for vendor receivables
type PaymentReaderSvc interface {
	// ListOutstanding returns vendors that still owe money.
	ListOutstanding(ctx context.Context) ([]domain.PendingPayment, error)

	// GetVendorBalance returns a vendor's record.
	GetVendorBalance(ctx context.Context, vendorName string) (*domain.PendingPayment, error)
}

// PaymentChargerSvc is the narrow surface the sales ledger drives.
type PaymentChargerSvc interface {
	// ApplyCharge adds amount to the vendor's balance; negative amounts subtract, clamped at zero.
	ApplyCharge(ctx context.Context, vendorName string, amount decimal.Decimal, date string) error
}

// PaymentWriterSvc defines write operations for vendor receivables
type PaymentWriterSvc interface {
	PaymentChargerSvc

	// RecordPaymentReceived subtracts a receipt from the vendor's balance.
	RecordPaymentReceived(ctx context.Context, vendorName string, amountPaid decimal.Decimal) (*domain.PendingPayment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
