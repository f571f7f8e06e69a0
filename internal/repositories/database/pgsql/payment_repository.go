package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/produce_ledger/internal/models"
	"github.com/SscSPs/produce_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const pendingPaymentColumns = `id, vendor_name, total_due_amount, last_transaction_date, payment_due_date, created_at, updated_at`

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for vendor receivables.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func (r *PgxPaymentRepository) FindPendingPayment(ctx context.Context, vendorName string) (*domain.PendingPayment, error) {
	query := `SELECT ` + pendingPaymentColumns + ` FROM pending_payments WHERE vendor_name = $1;`

	m, err := scanPendingPayment(r.Pool.QueryRow(ctx, query, vendorName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to find pending payment for %s", vendorName), err)
	}
	payment := mapping.ToDomainPendingPayment(m)
	return &payment, nil
}

func (r *PgxPaymentRepository) SavePendingPayment(ctx context.Context, payment domain.PendingPayment) error {
	m := mapping.ToModelPendingPayment(payment)

	query := `
		INSERT INTO pending_payments (vendor_name, total_due_amount, last_transaction_date, payment_due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (vendor_name) DO UPDATE SET
			total_due_amount = EXCLUDED.total_due_amount,
			last_transaction_date = EXCLUDED.last_transaction_date,
			payment_due_date = COALESCE(EXCLUDED.payment_due_date, pending_payments.payment_due_date),
			updated_at = NOW();
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VendorName,
		m.TotalDueAmount,
		m.LastTransactionDate,
		m.PaymentDueDate,
	)
	if err != nil {
		return apperrors.NewStoreError(fmt.Sprintf("failed to save pending payment for %s", m.VendorName), err)
	}
	return nil
}

func (r *PgxPaymentRepository) AdjustPendingBalance(ctx context.Context, vendorName string, delta decimal.Decimal, date string) (*domain.PendingPayment, decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer r.Rollback(ctx, tx)

	prior := decimal.Zero
	err = tx.QueryRow(ctx, `SELECT total_due_amount FROM pending_payments WHERE vendor_name = $1 FOR UPDATE;`, vendorName).Scan(&prior)
	if errors.Is(err, pgx.ErrNoRows) {
		if !delta.IsPositive() {
			return nil, decimal.Zero, apperrors.ErrNotFound
		}
	} else if err != nil {
		return nil, decimal.Zero, apperrors.NewStoreError(fmt.Sprintf("failed to lock pending payment for %s", vendorName), err)
	}

	// A concurrent first charge for the same vendor lands in the conflict branch.
	query := `
		INSERT INTO pending_payments (vendor_name, total_due_amount, last_transaction_date, created_at, updated_at)
		VALUES ($1, GREATEST(0, $2::numeric), $3, NOW(), NOW())
		ON CONFLICT (vendor_name) DO UPDATE SET
			total_due_amount = GREATEST(0, pending_payments.total_due_amount + $2::numeric),
			last_transaction_date = EXCLUDED.last_transaction_date,
			updated_at = NOW()
		RETURNING ` + pendingPaymentColumns + `;
	`
	m, err := scanPendingPayment(tx.QueryRow(ctx, query, vendorName, delta, date))
	if err != nil {
		return nil, decimal.Zero, apperrors.NewStoreError(fmt.Sprintf("failed to adjust pending payment for %s", vendorName), err)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, decimal.Zero, err
	}
	payment := mapping.ToDomainPendingPayment(m)
	return &payment, prior, nil
}

func (r *PgxPaymentRepository) ListOutstandingPayments(ctx context.Context) ([]domain.PendingPayment, error) {
	query := `
		SELECT ` + pendingPaymentColumns + `
		FROM pending_payments
		WHERE total_due_amount > 0
		ORDER BY last_transaction_date DESC, vendor_name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query outstanding payments", err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PendingPayment, error) {
		return scanPendingPayment(row)
	})
	if err != nil {
		return nil, apperrors.NewStoreError("failed to scan outstanding payments", err)
	}
	return mapping.ToDomainPendingPaymentSlice(modelPayments), nil
}

func scanPendingPayment(row pgx.Row) (models.PendingPayment, error) {
	var m models.PendingPayment
	err := row.Scan(
		&m.ID,
		&m.VendorName,
		&m.TotalDueAmount,
		&m.LastTransactionDate,
		&m.PaymentDueDate,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}
