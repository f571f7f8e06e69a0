package pgsql

import (
	"context"
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

type PgxInventoryRepository struct {
	BaseRepository
}

// newPgxInventoryRepository creates a new repository for inventory data.
func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

// UpsertInventory creates or replaces the record for (vegetable_type, date).
func (r *PgxInventoryRepository) UpsertInventory(ctx context.Context, record domain.InventoryRecord) (*domain.InventoryRecord, error) {
	m := mapping.ToModelInventory(record)

	query := `
		INSERT INTO inventory (
			vegetable_type, initial_stock, current_stock, unit_type, market_rate,
			carry_over_from_date, date, truck_arrival_time, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (vegetable_type, date) DO UPDATE SET
			initial_stock = EXCLUDED.initial_stock,
			current_stock = EXCLUDED.current_stock,
			unit_type = EXCLUDED.unit_type,
			market_rate = EXCLUDED.market_rate,
			carry_over_from_date = EXCLUDED.carry_over_from_date,
			truck_arrival_time = EXCLUDED.truck_arrival_time
		RETURNING id, created_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.VegetableType,
		m.InitialStock,
		m.CurrentStock,
		m.UnitType,
		m.MarketRate,
		m.CarryOverFromDate,
		m.Date,
		m.TruckArrivalTime,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to save inventory for %s on %s", m.VegetableType, m.Date), err)
	}

	saved := mapping.ToDomainInventory(m)
	return &saved, nil
}

// AdjustCurrentStock applies delta in a single UPDATE so concurrent sales cannot lose a decrement.
func (r *PgxInventoryRepository) AdjustCurrentStock(ctx context.Context, commodity, date string, delta decimal.Decimal) (bool, error) {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE inventory SET current_stock = current_stock + $1 WHERE vegetable_type = $2 AND date = $3;`,
		delta, commodity, date)
	if err != nil {
		return false, apperrors.NewStoreError(fmt.Sprintf("failed to adjust stock for %s on %s", commodity, date), err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListInventoryByDate returns every record for date ordered by commodity.
func (r *PgxInventoryRepository) ListInventoryByDate(ctx context.Context, date string) ([]domain.InventoryRecord, error) {
	query := `
		SELECT id, vegetable_type, initial_stock, current_stock, unit_type, market_rate,
			carry_over_from_date, date, truck_arrival_time, created_at
		FROM inventory
		WHERE date = $1
		ORDER BY vegetable_type;
	`
	rows, err := r.Pool.Query(ctx, query, date)
	if err != nil {
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to query inventory for %s", date), err)
	}
	defer rows.Close()

	modelRecords, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Inventory, error) {
		var m models.Inventory
		err := row.Scan(
			&m.ID,
			&m.VegetableType,
			&m.InitialStock,
			&m.CurrentStock,
			&m.UnitType,
			&m.MarketRate,
			&m.CarryOverFromDate,
			&m.Date,
			&m.TruckArrivalTime,
			&m.CreatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, apperrors.NewStoreError("failed to scan inventory", err)
	}
	return mapping.ToDomainInventorySlice(modelRecords), nil
}
