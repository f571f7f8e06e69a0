package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/produce_ledger/internal/models"
	"github.com/SscSPs/produce_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// saleColumns selects both current and legacy quantity/rate columns; the
// mapping layer decides which one to use.
const saleColumns = `
	id, vendor_name, vegetable_type, quantity_sold, unit_type, rate_per_unit,
	total_amount, payment_method, payment_status, due_amount, sale_date, sale_time,
	truck_arrival_time, distribution_time, notes, created_at, trays_sold, rate_per_tray`

type PgxSaleRepository struct {
	BaseRepository
	defaults domain.SaleDefaults
}

// newPgxSaleRepository creates a new repository for sale data.
func newPgxSaleRepository(pool *pgxpool.Pool, defaults domain.SaleDefaults) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
		defaults:       defaults,
	}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// SaveSale inserts a sale, writing quantity and rate under both column names.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) (int64, error) {
	m := mapping.ToModelSale(sale)

	query := `
		INSERT INTO sales (
			vendor_name, vegetable_type, quantity_sold, unit_type, rate_per_unit,
			total_amount, payment_method, payment_status, due_amount, sale_date, sale_time,
			truck_arrival_time, distribution_time, notes, created_at, trays_sold, rate_per_tray
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.VendorName,
		m.VegetableType,
		m.QuantitySold,
		m.UnitType,
		m.RatePerUnit,
		m.TotalAmount,
		m.PaymentMethod,
		m.PaymentStatus,
		m.DueAmount,
		m.SaleDate,
		m.SaleTime,
		m.TruckArrivalTime,
		m.DistributionTime,
		m.Notes,
		m.CreatedAt,
		m.TraysSold,
		m.RatePerTray,
	).Scan(&id)
	if err != nil {
		return 0, apperrors.NewStoreError("failed to insert sale", err)
	}
	return id, nil
}

// FindSaleByID retrieves a sale by id.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, id int64) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1;`

	m, err := scanSale(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to find sale %d", id), err)
	}
	sale := mapping.ToDomainSale(m, r.defaults)
	return &sale, nil
}

// DeleteSale removes a sale and reports whether a row was affected.
func (r *PgxSaleRepository) DeleteSale(ctx context.Context, id int64) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM sales WHERE id = $1;`, id)
	if err != nil {
		return false, apperrors.NewStoreError(fmt.Sprintf("failed to delete sale %d", id), err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListSales returns sales matching filter, newest first.
func (r *PgxSaleRepository) ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	var (
		conditions []string
		args       []any
	)
	add := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.StartDate != "" {
		add("sale_date >= $%d", filter.StartDate)
	}
	if filter.EndDate != "" {
		add("sale_date <= $%d", filter.EndDate)
	}
	if filter.Commodity != "" {
		add("vegetable_type = $%d", filter.Commodity)
	}
	if filter.PaymentStatus != "" {
		add("COALESCE(payment_status, 'paid') = $%d", string(filter.PaymentStatus))
	}
	if filter.PaymentMethod != "" {
		add("LOWER(payment_method) = LOWER($%d)", string(filter.PaymentMethod))
	}
	if q := strings.TrimSpace(filter.VendorQuery); q != "" {
		add(`vendor_name ILIKE ('%%' || $%d || '%%') ESCAPE '\'`, escapeLike(q))
	}

	query := `SELECT ` + saleColumns + ` FROM sales`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY sale_date DESC, sale_time DESC, id DESC;"

	return r.querySales(ctx, query, args...)
}

// ListRecentSales pages through history newest first using a keyset cursor.
func (r *PgxSaleRepository) ListRecentSales(ctx context.Context, limit int, after *domain.SaleCursor) ([]domain.Sale, error) {
	if after == nil {
		query := `SELECT ` + saleColumns + ` FROM sales ORDER BY sale_date DESC, sale_time DESC, id DESC LIMIT $1;`
		return r.querySales(ctx, query, limit)
	}
	query := `SELECT ` + saleColumns + ` FROM sales
		WHERE (sale_date, sale_time, id) < ($1, $2, $3)
		ORDER BY sale_date DESC, sale_time DESC, id DESC
		LIMIT $4;`
	return r.querySales(ctx, query, after.SaleDate, after.SaleTime, after.ID, limit)
}

func (r *PgxSaleRepository) querySales(ctx context.Context, query string, args ...any) ([]domain.Sale, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query sales", err)
	}
	defer rows.Close()

	modelSales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Sale, error) {
		return scanSale(row)
	})
	if err != nil {
		return nil, apperrors.NewStoreError("failed to scan sales", err)
	}
	return mapping.ToDomainSaleSlice(modelSales, r.defaults), nil
}

func scanSale(row pgx.Row) (models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.ID,
		&m.VendorName,
		&m.VegetableType,
		&m.QuantitySold,
		&m.UnitType,
		&m.RatePerUnit,
		&m.TotalAmount,
		&m.PaymentMethod,
		&m.PaymentStatus,
		&m.DueAmount,
		&m.SaleDate,
		&m.SaleTime,
		&m.TruckArrivalTime,
		&m.DistributionTime,
		&m.Notes,
		&m.CreatedAt,
		&m.TraysSold,
		&m.RatePerTray,
	)
	return m, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
