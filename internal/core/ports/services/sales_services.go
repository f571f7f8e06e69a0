package services

import (
	"context"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
)

// SalesReaderSvc defines read operations for individual sales
type SalesReaderSvc interface {
	// GetSale retrieves a single sale by id.
	GetSale(ctx context.Context, id int64) (*domain.Sale, error)
}

// SalesWriterSvc defines the sales ledger's write operations
type SalesWriterSvc interface {
	// RecordSale normalizes, validates and persists a sale, then applies its
	// inventory and receivable side effects on a best-effort basis.
	RecordSale(ctx context.Context, req domain.SaleRequest) (int64, error)

	// DeleteSale removes a sale and reverses its side effects.
	DeleteSale(ctx context.Context, id int64) (bool, error)
}

// SalesSvcFacade combines all sales-related service interfaces
type SalesSvcFacade interface {
	SalesReaderSvc
	SalesWriterSvc
}
