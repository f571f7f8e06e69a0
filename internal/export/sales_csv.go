// Package export renders ledger data for download.
package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// SalesColumns is the header row of a sales export, in order.
var SalesColumns = []string{
	"id", "sale_date", "sale_time", "vendor_name", "vegetable_type", "quantity_sold", "unit_type",
	"rate_per_unit", "total_amount", "payment_method", "payment_status", "due_amount", "notes",
}

// SalesFrame lays sales out as a string-typed dataframe so decimals keep
// their exact representation.
func SalesFrame(sales []domain.Sale) dataframe.DataFrame {
	cols := make([][]string, len(SalesColumns))
	for i := range cols {
		cols[i] = make([]string, 0, len(sales))
	}
	for _, s := range sales {
		row := []string{
			fmt.Sprint(s.ID),
			s.SaleDate,
			s.SaleTime,
			s.VendorName,
			s.Commodity,
			s.Quantity.String(),
			s.Unit,
			s.RatePerUnit.String(),
			s.TotalAmount.StringFixed(2),
			string(s.PaymentMethod),
			string(s.PaymentStatus),
			s.DueAmount.StringFixed(2),
			s.Notes,
		}
		for i, v := range row {
			cols[i] = append(cols[i], v)
		}
	}

	ss := make([]series.Series, len(SalesColumns))
	for i, name := range SalesColumns {
		ss[i] = series.New(cols[i], series.String, name)
	}
	return dataframe.New(ss...)
}

// WriteSalesCSV writes sales with a header row.
func WriteSalesCSV(w io.Writer, sales []domain.Sale) error {
	df := SalesFrame(sales)
	if df.Err != nil {
		return fmt.Errorf("error building sales frame: %w", df.Err)
	}
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	return nil
}
