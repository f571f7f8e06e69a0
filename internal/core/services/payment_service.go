package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPaymentService creates the vendor receivables ledger.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, options ...ServiceOption) portssvc.PaymentSvcFacade {
	svc := &paymentService{paymentRepo: paymentRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) ListOutstanding(ctx context.Context) ([]domain.PendingPayment, error) {
	return s.paymentRepo.ListOutstandingPayments(ctx)
}

func (s *paymentService) GetVendorBalance(ctx context.Context, vendorName string) (*domain.PendingPayment, error) {
	vendorName = strings.TrimSpace(vendorName)
	if vendorName == "" {
		return nil, invalid("vendorName is required")
	}
	return s.paymentRepo.FindPendingPayment(ctx, vendorName)
}

// ApplyCharge moves a vendor's balance by amount, never below zero. A
// reversal for a vendor with no record does not create one.
func (s *paymentService) ApplyCharge(ctx context.Context, vendorName string, amount decimal.Decimal, date string) error {
	if err := domain.ValidateDate("date", date); err != nil {
		return err
	}
	vendorName = strings.TrimSpace(vendorName)
	if vendorName == "" {
		return invalid("vendorName is required")
	}

	_, _, err := s.paymentRepo.AdjustPendingBalance(ctx, vendorName, amount, date)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Ignoring non-positive charge for vendor without balance",
			slog.String("vendor", vendorName),
			slog.String("amount", amount.String()))
		return nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to apply charge", slog.String("vendor", vendorName))
		return err
	}
	return nil
}

// RecordPaymentReceived returns (nil, nil) when the vendor has no record.
func (s *paymentService) RecordPaymentReceived(ctx context.Context, vendorName string, amountPaid decimal.Decimal) (*domain.PendingPayment, error) {
	vendorName = strings.TrimSpace(vendorName)
	if vendorName == "" {
		return nil, invalid("vendorName is required")
	}
	if !amountPaid.IsPositive() {
		return nil, invalid("amountPaid must be greater than zero, got %s", amountPaid)
	}

	updated, prior, err := s.paymentRepo.AdjustPendingBalance(ctx, vendorName, amountPaid.Neg(), domain.FormatDate(s.Now()))
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogInfo(ctx, "Payment received from vendor with no balance, nothing recorded", slog.String("vendor", vendorName))
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to record payment", slog.String("vendor", vendorName))
		return nil, err
	}

	if amountPaid.GreaterThan(prior) {
		s.LogWarn(ctx, "Payment exceeds outstanding balance, clamped at zero",
			slog.String("vendor", vendorName),
			slog.String("due", prior.String()),
			slog.String("paid", amountPaid.String()))
	}
	return updated, nil
}
