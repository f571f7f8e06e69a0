package accounting_test

import (
	"testing"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/SscSPs/produce_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestDueAmount(t *testing.T) {
	due, err := accounting.DueAmount(d("125"), domain.Paid, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, due.IsZero())

	due, err = accounting.DueAmount(d("125"), domain.Pending, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, due.Equal(d("125")))

	due, err = accounting.DueAmount(d("125"), domain.Pending, d("25"))
	require.NoError(t, err)
	assert.True(t, due.Equal(d("100")))

	_, err = accounting.DueAmount(d("125"), domain.Pending, d("125"))
	assert.Error(t, err)

	_, err = accounting.DueAmount(d("125"), domain.Pending, d("-1"))
	assert.Error(t, err)
}

func TestApplyBalanceDeltaNeverNegative(t *testing.T) {
	balance := decimal.Zero
	steps := []string{"100", "-30", "-500", "20", "-19.5", "-0.5", "-1"}
	for _, step := range steps {
		balance = accounting.ApplyBalanceDelta(balance, d(step))
		assert.False(t, balance.IsNegative(), "balance went negative after %s", step)
	}
	assert.True(t, balance.IsZero())
}

func TestSumSales(t *testing.T) {
	sales := []domain.Sale{
		{Quantity: d("10"), TotalAmount: d("200"), DueAmount: decimal.Zero},
		{Quantity: d("5"), TotalAmount: d("125"), DueAmount: d("125")},
		{Quantity: d("2.5"), TotalAmount: d("75"), DueAmount: d("25")},
	}

	totals := accounting.SumSales(sales)

	assert.True(t, totals.TotalQuantitySold.Equal(d("17.5")))
	assert.True(t, totals.TotalMoneyEarned.Equal(d("400")))
	assert.True(t, totals.PendingAmount.Equal(d("150")))
	assert.True(t, totals.PaidAmount.Equal(d("250")))
	assert.Equal(t, 3, totals.TotalTransactions)
	assert.True(t, totals.CollectionRate.Equal(d("62.5")))
}

func TestSumSalesEmpty(t *testing.T) {
	totals := accounting.SumSales(nil)
	assert.True(t, totals.TotalMoneyEarned.IsZero())
	assert.True(t, totals.CollectionRate.IsZero())
	assert.Zero(t, totals.TotalTransactions)
}

func TestRemainingToTargetAndInventoryValue(t *testing.T) {
	assert.True(t, accounting.RemainingToTarget(d("50"), d("10")).Equal(d("40")))
	assert.True(t, accounting.RemainingToTarget(d("50"), d("60")).IsZero())

	value := accounting.InventoryValue([]domain.InventoryRecord{
		{CurrentStock: d("90"), MarketRate: d("20")},
		{CurrentStock: d("-3"), MarketRate: d("15")},
		{CurrentStock: d("4"), MarketRate: d("250")},
	})
	assert.True(t, value.Equal(d("2800")))
}
