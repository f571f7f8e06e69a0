package services

import (
	"context"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InventoryReaderSvc defines read operations for stock positions
type InventoryReaderSvc interface {
	// GetByDate returns all records for a day ordered by commodity.
	GetByDate(ctx context.Context, date string) ([]domain.InventoryRecord, error)
}

// InventoryConsumerSvc is the narrow surface the sales ledger drives.
type InventoryConsumerSvc interface {
	// ApplyConsumption decrements stock; a negative quantity reverses a sale.
	ApplyConsumption(ctx context.Context, commodity string, quantity decimal.Decimal, date string) error
}

// InventoryWriterSvc defines stock intake operations
type InventoryWriterSvc interface {
	InventoryConsumerSvc

	// Intake creates or replaces the (commodity, date) record.
	Intake(ctx context.Context, input domain.IntakeInput) (*domain.InventoryRecord, error)

	// CarryOver moves leftover stock from one day into the next.
	CarryOver(ctx context.Context, fromDate, toDate string) ([]domain.InventoryRecord, error)
}

// InventorySvcFacade combines all inventory-related service interfaces
type InventorySvcFacade interface {
	InventoryReaderSvc
	InventoryWriterSvc
}
