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
)

type PgxSettingRepository struct {
	BaseRepository
}

func newPgxSettingRepository(pool *pgxpool.Pool) portsrepo.SettingRepositoryFacade {
	return &PgxSettingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SettingRepositoryFacade = (*PgxSettingRepository)(nil)

func (r *PgxSettingRepository) FindSetting(ctx context.Context, key string) (*domain.Setting, error) {
	var m models.Setting
	err := r.Pool.QueryRow(ctx,
		`SELECT id, key, value, updated_at FROM settings WHERE key = $1;`, key,
	).Scan(&m.ID, &m.Key, &m.Value, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStoreError(fmt.Sprintf("failed to read setting %s", key), err)
	}
	setting := mapping.ToDomainSetting(m)
	return &setting, nil
}

func (r *PgxSettingRepository) SaveSetting(ctx context.Context, key, value string) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();`,
		key, value)
	if err != nil {
		return apperrors.NewStoreError(fmt.Sprintf("failed to save setting %s", key), err)
	}
	return nil
}
