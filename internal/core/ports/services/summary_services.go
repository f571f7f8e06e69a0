package services

import (
	"context"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
)

// SummarySvcFacade is the read-only reporting surface.
type SummarySvcFacade interface {
	TodaysSummary(ctx context.Context) (*domain.DailySummary, error)
	SummaryForDate(ctx context.Context, date string) (*domain.DailySummary, error)

	// DateRangeSummary returns the sales between startDate and endDate
	// (inclusive) that match filter, plus their totals.
	DateRangeSummary(ctx context.Context, startDate, endDate string, filter domain.SaleFilter) (*domain.SalesReport, error)

	AllTimeSummary(ctx context.Context) (*domain.SalesTotals, error)

	// RecentSales pages through history newest first. An empty pageToken starts at the newest sale.
	RecentSales(ctx context.Context, limit int, pageToken string) (*domain.SalesPage, error)
}

// SummaryInvalidator is notified whenever sales change.
type SummaryInvalidator interface {
	InvalidateSummaries(ctx context.Context) error
}
