package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/produce_ledger/internal/models"
	"github.com/SscSPs/produce_ledger/internal/utils/accounting"
	"github.com/SscSPs/produce_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type paymentRepository struct {
	store *Store
}

var _ portsrepo.PaymentRepositoryFacade = (*paymentRepository)(nil)

func (r *paymentRepository) FindPendingPayment(_ context.Context, vendorName string) (*domain.PendingPayment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.payments[vendorName]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	payment := mapping.ToDomainPendingPayment(row)
	return &payment, nil
}

func (r *paymentRepository) SavePendingPayment(_ context.Context, payment domain.PendingPayment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	row := mapping.ToModelPendingPayment(payment)
	now := s.now()
	if existing, ok := s.payments[payment.VendorName]; ok {
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
	} else {
		s.nextPaymentID++
		row.ID = s.nextPaymentID
		row.CreatedAt = now
	}
	row.UpdatedAt = now
	s.payments[payment.VendorName] = row
	return nil
}

func (r *paymentRepository) AdjustPendingBalance(_ context.Context, vendorName string, delta decimal.Decimal, date string) (*domain.PendingPayment, decimal.Decimal, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	row, ok := s.payments[vendorName]
	if !ok {
		if !delta.IsPositive() {
			return nil, decimal.Zero, apperrors.ErrNotFound
		}
		s.nextPaymentID++
		row = models.PendingPayment{
			ID:             s.nextPaymentID,
			VendorName:     vendorName,
			TotalDueAmount: decimal.Zero,
			CreatedAt:      now,
		}
	}
	prior := row.TotalDueAmount
	row.TotalDueAmount = accounting.ApplyBalanceDelta(prior, delta)
	row.LastTransactionDate = date
	row.UpdatedAt = now
	s.payments[vendorName] = row

	payment := mapping.ToDomainPendingPayment(row)
	return &payment, prior, nil
}

func (r *paymentRepository) ListOutstandingPayments(_ context.Context) ([]domain.PendingPayment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []domain.PendingPayment{}
	for _, row := range s.payments {
		if row.TotalDueAmount.IsPositive() {
			result = append(result, mapping.ToDomainPendingPayment(row))
		}
	}
	slices.SortFunc(result, func(a, b domain.PendingPayment) int {
		if c := cmp.Compare(b.LastTransactionDate, a.LastTransactionDate); c != 0 {
			return c
		}
		return cmp.Compare(a.VendorName, b.VendorName)
	})
	return result, nil
}
