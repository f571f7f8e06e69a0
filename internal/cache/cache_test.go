package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/cache"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopSummaryCacheAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	c := cache.NoopSummaryCache{}

	require.NoError(t, c.SetTotals(ctx, "totals:all", domain.SalesTotals{TotalTransactions: 1}))
	_, err := c.GetTotals(ctx, "totals:all")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, c.Clear(ctx))
}

func TestRedisSummaryCache(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set, skipping Redis cache tests")
	}
	ctx := context.Background()
	c := cache.NewRedisSummaryCache(cache.NewRedisClient(addr, "", 0), time.Minute).
		WithHash("produce_ledger_test:" + uuid.NewString())
	t.Cleanup(func() {
		_ = c.Clear(ctx)
		_ = c.Close()
	})
	require.NoError(t, c.Ping(ctx))

	_, err := c.GetTotals(ctx, "totals:all")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	want := domain.SalesTotals{
		TotalQuantitySold: decimal.RequireFromString("12.5"),
		TotalMoneyEarned:  decimal.NewFromInt(250),
		PaidAmount:        decimal.NewFromInt(200),
		PendingAmount:     decimal.NewFromInt(50),
		TotalTransactions: 3,
		CollectionRate:    decimal.NewFromInt(80),
	}
	require.NoError(t, c.SetTotals(ctx, "totals:all", want))

	got, err := c.GetTotals(ctx, "totals:all")
	require.NoError(t, err)
	assert.True(t, got.TotalQuantitySold.Equal(want.TotalQuantitySold))
	assert.True(t, got.PendingAmount.Equal(want.PendingAmount))
	assert.Equal(t, 3, got.TotalTransactions)

	require.NoError(t, c.Clear(ctx))
	_, err = c.GetTotals(ctx, "totals:all")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
