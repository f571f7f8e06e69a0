package accounting

import (
	"fmt"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineTotal is quantity × rate, computed once when a sale is recorded.
func LineTotal(quantity, rate decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate)
}

// DueAmount returns what the vendor still owes on a sale.
// Paid sales owe nothing; pending sales owe the total minus anything settled at the counter.
func DueAmount(total decimal.Decimal, status domain.PaymentStatus, paidNow decimal.Decimal) (decimal.Decimal, error) {
	if status != domain.Pending {
		return decimal.Zero, nil
	}
	if paidNow.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount paid now cannot be negative")
	}
	if paidNow.GreaterThanOrEqual(total) && paidNow.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount paid now %s settles the full total %s; record the sale as paid", paidNow, total)
	}
	return total.Sub(paidNow), nil
}

// ApplyBalanceDelta adds delta to a receivable balance, never going below zero.
func ApplyBalanceDelta(balance, delta decimal.Decimal) decimal.Decimal {
	next := balance.Add(delta)
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}

// RemainingToTarget is how much more has to be sold today to reach target.
func RemainingToTarget(target, sold decimal.Decimal) decimal.Decimal {
	return ApplyBalanceDelta(target, sold.Neg())
}

// CollectionRate is the percentage of earnings already collected, rounded to two places.
func CollectionRate(paid, earned decimal.Decimal) decimal.Decimal {
	if !earned.IsPositive() {
		return decimal.Zero
	}
	return paid.Div(earned).Mul(hundred).Round(2)
}

// SumSales aggregates quantities and money for a set of sales.
func SumSales(sales []domain.Sale) domain.SalesTotals {
	totals := domain.SalesTotals{
		TotalQuantitySold: decimal.Zero,
		TotalMoneyEarned:  decimal.Zero,
		PaidAmount:        decimal.Zero,
		PendingAmount:     decimal.Zero,
		CollectionRate:    decimal.Zero,
	}
	for _, s := range sales {
		totals.TotalQuantitySold = totals.TotalQuantitySold.Add(s.Quantity)
		totals.TotalMoneyEarned = totals.TotalMoneyEarned.Add(s.TotalAmount)
		totals.PendingAmount = totals.PendingAmount.Add(s.DueAmount)
		totals.TotalTransactions++
	}
	totals.PaidAmount = totals.TotalMoneyEarned.Sub(totals.PendingAmount)
	totals.CollectionRate = CollectionRate(totals.PaidAmount, totals.TotalMoneyEarned)
	return totals
}

// InventoryValue is Σ currentStock × marketRate over records that still hold stock.
func InventoryValue(records []domain.InventoryRecord) decimal.Decimal {
	value := decimal.Zero
	for _, r := range records {
		if !r.CurrentStock.IsPositive() {
			continue
		}
		value = value.Add(r.CurrentStock.Mul(r.MarketRate))
	}
	return value
}
