package cache

import (
	"context"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
)

// NoopSummaryCache never stores anything; every lookup is a miss.
type NoopSummaryCache struct{}

var _ portsrepo.SummaryCache = NoopSummaryCache{}

func (NoopSummaryCache) GetTotals(_ context.Context, _ string) (*domain.SalesTotals, error) {
	return nil, apperrors.ErrNotFound
}

func (NoopSummaryCache) SetTotals(_ context.Context, _ string, _ domain.SalesTotals) error {
	return nil
}

func (NoopSummaryCache) Clear(_ context.Context) error {
	return nil
}
