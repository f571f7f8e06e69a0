package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale mirrors a row of the sales table. Rows written before the
// multi-commodity columns existed only carry TraysSold and RatePerTray,
// so every multi-commodity column is nullable here.
type Sale struct {
	ID               int64
	VendorName       string
	VegetableType    *string
	QuantitySold     decimal.NullDecimal
	UnitType         *string
	RatePerUnit      decimal.NullDecimal
	TotalAmount      decimal.Decimal
	PaymentMethod    string
	PaymentStatus    *string
	DueAmount        decimal.NullDecimal
	SaleDate         string
	SaleTime         string
	TruckArrivalTime *string
	DistributionTime *string
	Notes            *string
	CreatedAt        time.Time

	// legacy single-commodity columns
	TraysSold   decimal.NullDecimal
	RatePerTray decimal.NullDecimal
}
