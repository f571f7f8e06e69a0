package pgsql

import (
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every PostgreSQL repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool, databaseURL string, defaults domain.SaleDefaults, seed domain.SeedData) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Schema:        NewSchemaStore(dbPool, databaseURL, seed),
		SaleRepo:      newPgxSaleRepository(dbPool, defaults),
		InventoryRepo: newPgxInventoryRepository(dbPool),
		PaymentRepo:   newPgxPaymentRepository(dbPool),
		SettingRepo:   newPgxSettingRepository(dbPool),
		CommodityRepo: newPgxCommodityRepository(dbPool),
	}
}
