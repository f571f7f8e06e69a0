package pgsql

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// legacySaleColumns are the multi-commodity columns a single-commodity sales
// table lacks. Each is added on its own so one failure does not block the rest.
var legacySaleColumns = []struct {
	name       string
	definition string
}{
	{"vegetable_type", "TEXT DEFAULT 'Tomatoes'"},
	{"quantity_sold", "NUMERIC"},
	{"unit_type", "TEXT DEFAULT 'trays'"},
	{"rate_per_unit", "NUMERIC"},
	{"payment_status", "TEXT DEFAULT 'paid'"},
	{"due_amount", "NUMERIC DEFAULT 0"},
	{"truck_arrival_time", "TEXT"},
	{"distribution_time", "TEXT"},
	{"notes", "TEXT"},
	{"created_at", "TIMESTAMPTZ NOT NULL DEFAULT NOW()"},
	{"trays_sold", "NUMERIC"},
	{"rate_per_tray", "NUMERIC"},
}

// legacyBackfills copy legacy quantity/rate values into the current columns.
// They only touch rows where the current column is still NULL.
var legacyBackfills = []struct {
	step  string
	query string
}{
	{"backfill.quantity_sold", `UPDATE sales SET quantity_sold = trays_sold WHERE quantity_sold IS NULL AND trays_sold IS NOT NULL`},
	{"backfill.rate_per_unit", `UPDATE sales SET rate_per_unit = rate_per_tray WHERE rate_per_unit IS NULL AND rate_per_tray IS NOT NULL`},
	{"backfill.due_amount", `UPDATE sales SET due_amount = 0 WHERE due_amount IS NULL`},
}

// SchemaStore brings a PostgreSQL database to the current ledger schema.
type SchemaStore struct {
	BaseRepository
	databaseURL string
	seed        domain.SeedData
	logger      *slog.Logger
}

// NewSchemaStore creates a schema store over an open pool. databaseURL is used
// for the short-lived database/sql handle golang-migrate needs.
func NewSchemaStore(pool *pgxpool.Pool, databaseURL string, seed domain.SeedData) *SchemaStore {
	return &SchemaStore{
		BaseRepository: BaseRepository{Pool: pool},
		databaseURL:    databaseURL,
		seed:           seed,
		logger:         slog.Default().With(slog.String("component", "schema_store")),
	}
}

var _ portsrepo.SchemaStore = (*SchemaStore)(nil)

// Initialize creates missing tables, upgrades a legacy sales table in place
// and seeds defaults. Only a failure to run the base migration is returned;
// upgrade and seed steps log and continue.
func (s *SchemaStore) Initialize(ctx context.Context) error {
	if err := s.runMigrations(); err != nil {
		return err
	}
	s.upgradeLegacySales(ctx)
	s.seedDefaults(ctx)
	return nil
}

// Close releases the connection pool.
func (s *SchemaStore) Close() {
	if s.Pool != nil {
		s.Pool.Close()
		s.logger.Info("PostgreSQL connection pool closed.")
	}
}

func (s *SchemaStore) runMigrations() error {
	s.logger.Info("Running database migrations...")

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return apperrors.NewStoreError("failed to load embedded migrations", err)
	}

	// golang-migrate needs a database/sql handle; use the pgx stdlib driver
	// so it speaks the same protocol as the pool.
	migrationDB, err := sql.Open("pgx", s.databaseURL)
	if err != nil {
		return apperrors.NewStoreError("failed to open database connection for migrations", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			s.logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return apperrors.NewStoreError("failed to ping database for migrations", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return apperrors.NewStoreError("could not create postgres driver instance for migrations", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return apperrors.NewStoreError("could not create migrate instance", err)
	}

	upErr := m.Up()
	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return apperrors.NewStoreError("failed to apply migrations", upErr)
	}
	if sourceErr != nil {
		return apperrors.NewStoreError("migration source error", sourceErr)
	}
	if dbErr != nil {
		return apperrors.NewStoreError("migration database error", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		s.logger.Info("No new migrations to apply.")
	} else {
		s.logger.Info("Database migrations applied successfully.")
	}
	return nil
}

func (s *SchemaStore) existingSaleColumns(ctx context.Context) (map[string]bool, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = 'sales'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns[name] = true
	}
	return columns, rows.Err()
}

// upgradeLegacySales adds multi-commodity columns to a single-commodity sales
// table and backfills them. Legacy columns are never dropped or renamed.
func (s *SchemaStore) upgradeLegacySales(ctx context.Context) {
	columns, err := s.existingSaleColumns(ctx)
	if err != nil {
		s.warn(ctx, apperrors.NewNonCriticalWarning("legacy.inspect_columns", err))
		return
	}

	legacy := !columns["quantity_sold"]
	if legacy {
		s.logger.Info("Legacy single-commodity sales table detected, upgrading in place")
	}
	for _, col := range legacySaleColumns {
		if columns[col.name] {
			continue
		}
		query := fmt.Sprintf("ALTER TABLE sales ADD COLUMN %s %s", col.name, col.definition)
		if _, err := s.Pool.Exec(ctx, query); err != nil {
			s.warn(ctx, apperrors.NewNonCriticalWarning("legacy.add_column."+col.name, err))
			continue
		}
		s.logger.Info("Added sales column", slog.String("column", col.name))
	}

	// Old rows stored whole trays; widen so fractional quantities can be written to both names.
	if legacy {
		for _, col := range []string{"trays_sold", "rate_per_tray"} {
			query := fmt.Sprintf("ALTER TABLE sales ALTER COLUMN %s TYPE NUMERIC", col)
			if _, err := s.Pool.Exec(ctx, query); err != nil {
				s.warn(ctx, apperrors.NewNonCriticalWarning("legacy.widen."+col, err))
			}
		}
	}

	for _, backfill := range legacyBackfills {
		tag, err := s.Pool.Exec(ctx, backfill.query)
		if err != nil {
			s.warn(ctx, apperrors.NewNonCriticalWarning(backfill.step, err))
			continue
		}
		if tag.RowsAffected() > 0 {
			s.logger.Info("Backfilled legacy sales rows",
				slog.String("step", backfill.step),
				slog.Int64("rows", tag.RowsAffected()))
		}
	}
}

// seedDefaults writes default settings and commodity types without
// overwriting anything already present.
func (s *SchemaStore) seedDefaults(ctx context.Context) {
	tx, err := s.Begin(ctx)
	if err != nil {
		s.warn(ctx, apperrors.NewNonCriticalWarning("seed.begin", err))
		return
	}
	defer s.Rollback(ctx, tx)

	for key, value := range s.seed.Settings {
		if _, err := tx.Exec(ctx,
			`INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, NOW()) ON CONFLICT (key) DO NOTHING`,
			key, value); err != nil {
			s.warn(ctx, apperrors.NewNonCriticalWarning("seed.settings."+key, err))
			return
		}
	}
	for _, c := range s.seed.Commodities {
		if _, err := tx.Exec(ctx,
			`INSERT INTO vegetable_types (name, default_unit, is_active, created_at) VALUES ($1, $2, $3, NOW()) ON CONFLICT (name) DO NOTHING`,
			c.Name, c.DefaultUnit, c.IsActive); err != nil {
			s.warn(ctx, apperrors.NewNonCriticalWarning("seed.vegetable_types."+c.Name, err))
			return
		}
	}

	if err := s.Commit(ctx, tx); err != nil {
		s.warn(ctx, apperrors.NewNonCriticalWarning("seed.commit", err))
	}
}

func (s *SchemaStore) warn(ctx context.Context, w *apperrors.NonCriticalWarning) {
	s.logger.WarnContext(ctx, "Schema step failed, continuing",
		slog.String("step", w.Step),
		slog.String("error", w.Err.Error()))
}
