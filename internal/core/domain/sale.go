package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how the vendor settled (or will settle) a sale.
type PaymentMethod string

const (
	Cash   PaymentMethod = "Cash"
	Credit PaymentMethod = "Credit"
	UPI    PaymentMethod = "UPI"
)

// ParsePaymentMethod accepts any casing ("cash", "CASH", "upi") and returns the
// canonical value. Unknown input is returned unchanged so validation can reject it.
func ParsePaymentMethod(s string) PaymentMethod {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash":
		return Cash
	case "credit":
		return Credit
	case "upi":
		return UPI
	default:
		return PaymentMethod(strings.TrimSpace(s))
	}
}

// PaymentStatus tracks whether a sale's money has been collected.
type PaymentStatus string

const (
	Paid    PaymentStatus = "paid"
	Pending PaymentStatus = "pending"
)

// ParsePaymentStatus normalizes casing the same way ParsePaymentMethod does.
func ParsePaymentStatus(s string) PaymentStatus {
	return PaymentStatus(strings.ToLower(strings.TrimSpace(s)))
}

// Sale is one recorded transaction. It is never edited after creation.
type Sale struct {
	ID               int64           `json:"id"`
	VendorName       string          `json:"vendorName"`
	Commodity        string          `json:"commodity"`
	Quantity         decimal.Decimal `json:"quantity"`
	Unit             string          `json:"unit"`
	RatePerUnit      decimal.Decimal `json:"ratePerUnit"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	PaymentMethod    PaymentMethod   `json:"paymentMethod"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus"`
	DueAmount        decimal.Decimal `json:"dueAmount"`
	SaleDate         string          `json:"saleDate"` // YYYY-MM-DD
	SaleTime         string          `json:"saleTime"` // HH:MM:SS local
	TruckArrivalTime string          `json:"truckArrivalTime,omitempty"`
	DistributionTime string          `json:"distributionTime,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// IsPending reports whether the sale still carries vendor debt.
func (s Sale) IsPending() bool {
	return s.PaymentStatus == Pending && s.DueAmount.GreaterThan(decimal.Zero)
}

// SaleRequest is the input accepted by the sales ledger. It is either a
// structured SaleInput or the reduced LegacySaleInput form.
type SaleRequest interface {
	isSaleRequest()
}

// SaleInput is the canonical, structured form of a new sale.
type SaleInput struct {
	VendorName       string          `json:"vendorName" validate:"required"`
	Commodity        string          `json:"commodity" validate:"required"`
	Quantity         decimal.Decimal `json:"quantity"`
	Unit             string          `json:"unit" validate:"required"`
	RatePerUnit      decimal.Decimal `json:"ratePerUnit"`
	PaymentMethod    PaymentMethod   `json:"paymentMethod" validate:"required,oneof=Cash Credit UPI"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus" validate:"required,oneof=paid pending"`
	AmountPaidNow    decimal.Decimal `json:"amountPaidNow"` // partial settlement at the counter, pending sales only
	TruckArrivalTime string          `json:"truckArrivalTime,omitempty"`
	DistributionTime string          `json:"distributionTime,omitempty"`
	Notes            string          `json:"notes,omitempty"`
}

// LegacySaleInput is the old single-commodity entry form: vendor, quantity,
// rate and payment method only.
type LegacySaleInput struct {
	VendorName    string          `json:"vendorName"`
	Quantity      decimal.Decimal `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
}

func (SaleInput) isSaleRequest()       {}
func (LegacySaleInput) isSaleRequest() {}

// SaleDefaults fill the gaps left by reduced or partial inputs.
type SaleDefaults struct {
	Commodity string
	Unit      string
}

// NormalizeSaleRequest converts any SaleRequest into a canonical SaleInput.
// Validation always runs on the result, never on the raw request.
func NormalizeSaleRequest(req SaleRequest, defaults SaleDefaults) (SaleInput, bool) {
	var in SaleInput
	switch r := req.(type) {
	case SaleInput:
		in = r
	case *SaleInput:
		if r == nil {
			return SaleInput{}, false
		}
		in = *r
	case LegacySaleInput:
		in = legacyToInput(r)
	case *LegacySaleInput:
		if r == nil {
			return SaleInput{}, false
		}
		in = legacyToInput(*r)
	default:
		return SaleInput{}, false
	}

	in.VendorName = strings.TrimSpace(in.VendorName)
	in.Commodity = strings.TrimSpace(in.Commodity)
	in.Unit = strings.TrimSpace(in.Unit)
	in.PaymentMethod = ParsePaymentMethod(string(in.PaymentMethod))
	in.PaymentStatus = ParsePaymentStatus(string(in.PaymentStatus))

	if in.Commodity == "" {
		in.Commodity = defaults.Commodity
	}
	if in.Unit == "" {
		in.Unit = defaults.Unit
	}
	if in.PaymentStatus == "" {
		if in.PaymentMethod == Credit {
			in.PaymentStatus = Pending
		} else {
			in.PaymentStatus = Paid
		}
	}
	return in, true
}

func legacyToInput(r LegacySaleInput) SaleInput {
	return SaleInput{
		VendorName:    r.VendorName,
		Quantity:      r.Quantity,
		RatePerUnit:   r.Rate,
		PaymentMethod: r.PaymentMethod,
		PaymentStatus: Paid,
	}
}

// SaleFilter narrows a date-range query. Empty fields do not filter.
type SaleFilter struct {
	StartDate     string
	EndDate       string
	Commodity     string
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod
	VendorQuery   string // case-insensitive substring of the vendor name
}

// SaleCursor marks the last row of a page of recent sales.
type SaleCursor struct {
	SaleDate string
	SaleTime string
	ID       int64
}

// Before reports whether s sorts after the cursor in newest-first order.
func (c SaleCursor) Before(s Sale) bool {
	if s.SaleDate != c.SaleDate {
		return s.SaleDate < c.SaleDate
	}
	if s.SaleTime != c.SaleTime {
		return s.SaleTime < c.SaleTime
	}
	return s.ID < c.ID
}
