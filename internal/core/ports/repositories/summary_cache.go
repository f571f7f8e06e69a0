package repositories

import (
	"context"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
)

// SummaryCache stores computed sales totals between sale writes.
type SummaryCache interface {
	// GetTotals returns cached totals or apperrors.ErrNotFound on a miss.
	GetTotals(ctx context.Context, key string) (*domain.SalesTotals, error)

	// SetTotals stores totals under key.
	SetTotals(ctx context.Context, key string, totals domain.SalesTotals) error

	// Clear drops every cached entry.
	Clear(ctx context.Context) error
}
