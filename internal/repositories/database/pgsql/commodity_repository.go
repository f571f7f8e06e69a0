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
)

type PgxCommodityRepository struct {
	BaseRepository
}

// newPgxCommodityRepository creates a new repository for the vegetable_types catalog.
func newPgxCommodityRepository(pool *pgxpool.Pool) portsrepo.CommodityRepositoryFacade {
	return &PgxCommodityRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CommodityRepositoryFacade = (*PgxCommodityRepository)(nil)

func (r *PgxCommodityRepository) ListCommodityTypes(ctx context.Context) ([]domain.CommodityType, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, name, default_unit, is_active, created_at
		FROM vegetable_types
		WHERE is_active
		ORDER BY name;`)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to query vegetable types", err)
	}
	defer rows.Close()

	modelTypes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.VegetableType, error) {
		var m models.VegetableType
		err := row.Scan(&m.ID, &m.Name, &m.DefaultUnit, &m.IsActive, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, apperrors.NewStoreError("failed to scan vegetable types", err)
	}
	return mapping.ToDomainCommodityTypeSlice(modelTypes), nil
}

func (r *PgxCommodityRepository) SaveCommodityType(ctx context.Context, commodity domain.CommodityType) (*domain.CommodityType, error) {
	m := mapping.ToModelVegetableType(commodity)

	err := r.Pool.QueryRow(ctx, `
		INSERT INTO vegetable_types (name, default_unit, is_active, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at;`,
		m.Name, m.DefaultUnit, m.IsActive,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: commodity type %q", apperrors.ErrDuplicate, m.Name)
		}
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to save vegetable type %s", m.Name), err)
	}

	saved := mapping.ToDomainCommodityType(m)
	return &saved, nil
}
