package domain

import "github.com/shopspring/decimal"

// SalesTotals aggregates a set of sales.
type SalesTotals struct {
	TotalQuantitySold decimal.Decimal `json:"totalQuantitySold"`
	TotalMoneyEarned  decimal.Decimal `json:"totalMoneyEarned"`
	PaidAmount        decimal.Decimal `json:"paidAmount"`
	PendingAmount     decimal.Decimal `json:"pendingAmount"`
	TotalTransactions int             `json:"totalTransactions"`
	CollectionRate    decimal.Decimal `json:"collectionRate"` // percent of earnings already collected
}

// DailySummary is the home screen view of one business day.
type DailySummary struct {
	Date string `json:"date"`
	SalesTotals
	DailyTarget         decimal.Decimal   `json:"dailyTarget"`
	RemainingToTarget   decimal.Decimal   `json:"remainingToTarget"`
	Inventory           []InventoryRecord `json:"inventory"`
	TotalInventoryValue decimal.Decimal   `json:"totalInventoryValue"`
}

// SalesReport is the result of a filtered date-range query.
type SalesReport struct {
	Filter SaleFilter  `json:"-"`
	Sales  []Sale      `json:"sales"`
	Totals SalesTotals `json:"totals"`
}

// SalesPage is one page of the newest-first sales history.
type SalesPage struct {
	Sales     []Sale  `json:"sales"`
	NextToken *string `json:"nextToken,omitempty"`
}
