package dto

import (
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordSaleRequest carries either a structured sale or, when Legacy is set,
// the four-field entry older clients send (vendor, quantity, rate, method).
type RecordSaleRequest struct {
	Legacy bool `json:"legacy"`

	VendorName       string          `json:"vendorName" binding:"required"`
	Commodity        string          `json:"commodity"`
	Quantity         decimal.Decimal `json:"quantity"`
	Unit             string          `json:"unit"`
	RatePerUnit      decimal.Decimal `json:"ratePerUnit"`
	Rate             decimal.Decimal `json:"rate"` // legacy name for RatePerUnit
	PaymentMethod    string          `json:"paymentMethod" binding:"required"`
	PaymentStatus    string          `json:"paymentStatus"`
	AmountPaidNow    decimal.Decimal `json:"amountPaidNow"`
	TruckArrivalTime string          `json:"truckArrivalTime"`
	DistributionTime string          `json:"distributionTime"`
	Notes            string          `json:"notes"`
}

// ToSaleRequest converts the body into the domain request variant it describes.
func (r RecordSaleRequest) ToSaleRequest() domain.SaleRequest {
	rate := r.RatePerUnit
	if rate.IsZero() {
		rate = r.Rate
	}
	if r.Legacy {
		return domain.LegacySaleInput{
			VendorName:    r.VendorName,
			Quantity:      r.Quantity,
			Rate:          rate,
			PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		}
	}
	return domain.SaleInput{
		VendorName:       r.VendorName,
		Commodity:        r.Commodity,
		Quantity:         r.Quantity,
		Unit:             r.Unit,
		RatePerUnit:      rate,
		PaymentMethod:    domain.PaymentMethod(r.PaymentMethod),
		PaymentStatus:    domain.PaymentStatus(r.PaymentStatus),
		AmountPaidNow:    r.AmountPaidNow,
		TruckArrivalTime: r.TruckArrivalTime,
		DistributionTime: r.DistributionTime,
		Notes:            r.Notes,
	}
}

// RecordSaleResponse returns the id of the stored sale.
type RecordSaleResponse struct {
	ID int64 `json:"id"`
}

// DeleteSaleResponse reports whether a row was removed.
type DeleteSaleResponse struct {
	Deleted bool `json:"deleted"`
}

// ListSalesParams defines query parameters for paging through sales history.
type ListSalesParams struct {
	Limit     int    `form:"limit,default=100" binding:"min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ListSalesResponse is one page of sales, newest first.
type ListSalesResponse struct {
	Sales     []domain.Sale `json:"sales"`
	NextToken *string       `json:"nextToken,omitempty"`
}

// ToListSalesResponse converts a domain page, never returning a null list.
func ToListSalesResponse(page *domain.SalesPage) ListSalesResponse {
	sales := page.Sales
	if sales == nil {
		sales = []domain.Sale{}
	}
	return ListSalesResponse{Sales: sales, NextToken: page.NextToken}
}
