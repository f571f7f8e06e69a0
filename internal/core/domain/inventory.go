package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord is the stock position of one commodity on one day.
// CurrentStock may go negative when more was sold than was taken in; the
// ledger records that as-is.
type InventoryRecord struct {
	ID                int64           `json:"id"`
	Commodity         string          `json:"commodity"`
	InitialStock      decimal.Decimal `json:"initialStock"`
	CurrentStock      decimal.Decimal `json:"currentStock"`
	Unit              string          `json:"unit"`
	MarketRate        decimal.Decimal `json:"marketRate"`
	Date              string          `json:"date"`
	CarryOverFromDate string          `json:"carryOverFromDate,omitempty"`
	TruckArrivalTime  string          `json:"truckArrivalTime,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// IntakeInput describes stock arriving (or carried over) for a day.
type IntakeInput struct {
	Commodity         string          `json:"commodity"`
	InitialStock      decimal.Decimal `json:"initialStock"`
	Unit              string          `json:"unit"`
	MarketRate        decimal.Decimal `json:"marketRate"`
	Date              string          `json:"date"`
	CarryOverFromDate string          `json:"carryOverFromDate,omitempty"`
	TruckArrivalTime  string          `json:"truckArrivalTime,omitempty"`
}
