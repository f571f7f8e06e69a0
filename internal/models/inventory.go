package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory mirrors a row of the inventory table.
type Inventory struct {
	ID                int64
	VegetableType     string
	InitialStock      decimal.Decimal
	CurrentStock      decimal.Decimal
	UnitType          string
	MarketRate        decimal.Decimal
	CarryOverFromDate *string
	Date              string
	TruckArrivalTime  *string
	CreatedAt         time.Time
}
