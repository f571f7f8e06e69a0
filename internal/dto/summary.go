package dto

import "github.com/SscSPs/produce_ledger/internal/core/domain"

// RangeSummaryParams defines query parameters for a date range report.
type RangeSummaryParams struct {
	Start     string `form:"start" binding:"required"`
	End       string `form:"end" binding:"required"`
	Commodity string `form:"commodity"`
	Status    string `form:"status"`
	Method    string `form:"method"`
	Vendor    string `form:"vendor"`
}

// ToFilter builds the optional filters; the date bounds are passed separately.
func (p RangeSummaryParams) ToFilter() domain.SaleFilter {
	filter := domain.SaleFilter{
		Commodity:   p.Commodity,
		VendorQuery: p.Vendor,
	}
	if p.Status != "" {
		filter.PaymentStatus = domain.ParsePaymentStatus(p.Status)
	}
	if p.Method != "" {
		filter.PaymentMethod = domain.ParsePaymentMethod(p.Method)
	}
	return filter
}

// SalesReportResponse is a filtered list of sales plus their totals.
type SalesReportResponse struct {
	Start  string             `json:"start"`
	End    string             `json:"end"`
	Sales  []domain.Sale      `json:"sales"`
	Totals domain.SalesTotals `json:"totals"`
}

func ToSalesReportResponse(start, end string, report *domain.SalesReport) SalesReportResponse {
	sales := report.Sales
	if sales == nil {
		sales = []domain.Sale{}
	}
	return SalesReportResponse{Start: start, End: end, Sales: sales, Totals: report.Totals}
}
