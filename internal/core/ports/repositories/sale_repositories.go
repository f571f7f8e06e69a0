package repositories

import (
	"context"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a sale by id. Returns apperrors.ErrNotFound if absent.
	FindSaleByID(ctx context.Context, id int64) (*domain.Sale, error)

	// ListSales returns sales matching the filter, newest first
	// (sale_date desc, sale_time desc, id desc).
	ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error)

	// ListRecentSales returns at most limit sales older than after (when set), newest first.
	ListRecentSales(ctx context.Context, limit int, after *domain.SaleCursor) ([]domain.Sale, error)
}

// SaleWriter defines write operations for sale data
type SaleWriter interface {
	// SaveSale inserts a new sale and returns its assigned id.
	SaveSale(ctx context.Context, sale domain.Sale) (int64, error)

	// DeleteSale removes a sale and reports whether a row was removed.
	DeleteSale(ctx context.Context, id int64) (bool, error)
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
