package repositories

import (
	"context"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentReader defines read operations for vendor receivables
type PaymentReader interface {
	// FindPendingPayment returns the vendor's record or apperrors.ErrNotFound.
	FindPendingPayment(ctx context.Context, vendorName string) (*domain.PendingPayment, error)

	// ListOutstandingPayments returns vendors with a positive balance,
	// most recent transaction first.
	ListOutstandingPayments(ctx context.Context) ([]domain.PendingPayment, error)
}

// PaymentWriter defines write operations for vendor receivables
type PaymentWriter interface {
	// SavePendingPayment inserts or updates the vendor's record.
	SavePendingPayment(ctx context.Context, payment domain.PendingPayment) error

	// AdjustPendingBalance atomically adds delta to the vendor's balance,
	// clamped at zero, and stamps date as the last transaction date. It
	// returns the updated record and the balance before the change. A
	// positive delta creates the record when missing; otherwise a missing
	// vendor yields apperrors.ErrNotFound.
	AdjustPendingBalance(ctx context.Context, vendorName string, delta decimal.Decimal, date string) (*domain.PendingPayment, decimal.Decimal, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
