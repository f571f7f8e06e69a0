package dto

import (
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IntakeRequest records a morning stock intake.
type IntakeRequest struct {
	Commodity         string          `json:"commodity" binding:"required"`
	InitialStock      decimal.Decimal `json:"initialStock"`
	Unit              string          `json:"unit"`
	MarketRate        decimal.Decimal `json:"marketRate"`
	Date              string          `json:"date" binding:"required"`
	CarryOverFromDate string          `json:"carryOverFromDate"`
	TruckArrivalTime  string          `json:"truckArrivalTime"`
}

func (r IntakeRequest) ToIntakeInput() domain.IntakeInput {
	return domain.IntakeInput{
		Commodity:         r.Commodity,
		InitialStock:      r.InitialStock,
		Unit:              r.Unit,
		MarketRate:        r.MarketRate,
		Date:              r.Date,
		CarryOverFromDate: r.CarryOverFromDate,
		TruckArrivalTime:  r.TruckArrivalTime,
	}
}

// CarryOverRequest moves leftover stock from one day to another.
type CarryOverRequest struct {
	FromDate string `json:"fromDate" binding:"required"`
	ToDate   string `json:"toDate" binding:"required"`
}

// InventoryListResponse lists a day's stock positions.
type InventoryListResponse struct {
	Date       string                   `json:"date"`
	Records    []domain.InventoryRecord `json:"records"`
	TotalValue decimal.Decimal          `json:"totalValue"`
}

// ToInventoryListResponse values each record at current stock times market rate.
func ToInventoryListResponse(date string, records []domain.InventoryRecord) InventoryListResponse {
	if records == nil {
		records = []domain.InventoryRecord{}
	}
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.CurrentStock.Mul(r.MarketRate))
	}
	return InventoryListResponse{Date: date, Records: records, TotalValue: total}
}
