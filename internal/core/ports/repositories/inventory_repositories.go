package repositories

import (
	"context"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InventoryReader defines read operations for inventory data
type InventoryReader interface {
	// ListInventoryByDate returns every record for date ordered by commodity name.
	ListInventoryByDate(ctx context.Context, date string) ([]domain.InventoryRecord, error)
}

// InventoryWriter defines write operations for inventory data
type InventoryWriter interface {
	// UpsertInventory creates or replaces the (commodity, date) record.
	UpsertInventory(ctx context.Context, record domain.InventoryRecord) (*domain.InventoryRecord, error)

	// AdjustCurrentStock adds delta to current stock of the (commodity, date) record.
	// It reports false without error when no such record exists.
	AdjustCurrentStock(ctx context.Context, commodity, date string, delta decimal.Decimal) (bool, error)
}

// InventoryRepositoryFacade combines all inventory-related repository interfaces
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
}
