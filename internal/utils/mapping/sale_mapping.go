package mapping

import (
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/SscSPs/produce_ledger/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale.
// Quantity and rate are written under both the current and the legacy column names.
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		ID:               d.ID,
		VendorName:       d.VendorName,
		VegetableType:    stringPtr(d.Commodity),
		QuantitySold:     nullDecimal(d.Quantity),
		UnitType:         stringPtr(d.Unit),
		RatePerUnit:      nullDecimal(d.RatePerUnit),
		TotalAmount:      d.TotalAmount,
		PaymentMethod:    string(d.PaymentMethod),
		PaymentStatus:    stringPtr(string(d.PaymentStatus)),
		DueAmount:        nullDecimal(d.DueAmount),
		SaleDate:         d.SaleDate,
		SaleTime:         d.SaleTime,
		TruckArrivalTime: stringPtr(d.TruckArrivalTime),
		DistributionTime: stringPtr(d.DistributionTime),
		Notes:            stringPtr(d.Notes),
		CreatedAt:        d.CreatedAt,
		TraysSold:        nullDecimal(d.Quantity),
		RatePerTray:      nullDecimal(d.RatePerUnit),
	}
}

// ToDomainSale converts a model Sale to a domain Sale. Legacy rows that only
// carry trays_sold/rate_per_tray are read through the current field names, and
// missing commodity/unit columns fall back to defaults.
func ToDomainSale(m models.Sale, defaults domain.SaleDefaults) domain.Sale {
	return domain.Sale{
		ID:               m.ID,
		VendorName:       m.VendorName,
		Commodity:        stringOr(m.VegetableType, defaults.Commodity),
		Quantity:         firstValid(m.QuantitySold, m.TraysSold),
		Unit:             stringOr(m.UnitType, defaults.Unit),
		RatePerUnit:      firstValid(m.RatePerUnit, m.RatePerTray),
		TotalAmount:      m.TotalAmount,
		PaymentMethod:    domain.ParsePaymentMethod(m.PaymentMethod),
		PaymentStatus:    domain.ParsePaymentStatus(stringOr(m.PaymentStatus, string(domain.Paid))),
		DueAmount:        firstValid(m.DueAmount),
		SaleDate:         m.SaleDate,
		SaleTime:         m.SaleTime,
		TruckArrivalTime: stringValue(m.TruckArrivalTime),
		DistributionTime: stringValue(m.DistributionTime),
		Notes:            stringValue(m.Notes),
		CreatedAt:        m.CreatedAt,
	}
}

// ToDomainSaleSlice converts a slice of model Sales to a slice of domain Sales
func ToDomainSaleSlice(ms []models.Sale, defaults domain.SaleDefaults) []domain.Sale {
	ds := make([]domain.Sale, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSale(m, defaults)
	}
	return ds
}
