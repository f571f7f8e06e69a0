package mapping

import (
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/SscSPs/produce_ledger/internal/models"
)

// ToModelPendingPayment converts a domain PendingPayment to a model PendingPayment
func ToModelPendingPayment(d domain.PendingPayment) models.PendingPayment {
	return models.PendingPayment{
		ID:                  d.ID,
		VendorName:          d.VendorName,
		TotalDueAmount:      d.TotalDueAmount,
		LastTransactionDate: d.LastTransactionDate,
		PaymentDueDate:      stringPtr(d.PaymentDueDate),
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

// ToDomainPendingPayment converts a model PendingPayment to a domain PendingPayment
func ToDomainPendingPayment(m models.PendingPayment) domain.PendingPayment {
	return domain.PendingPayment{
		ID:                  m.ID,
		VendorName:          m.VendorName,
		TotalDueAmount:      m.TotalDueAmount,
		LastTransactionDate: m.LastTransactionDate,
		PaymentDueDate:      stringValue(m.PaymentDueDate),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// ToDomainPendingPaymentSlice converts a slice of model rows to domain records
func ToDomainPendingPaymentSlice(ms []models.PendingPayment) []domain.PendingPayment {
	ds := make([]domain.PendingPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPendingPayment(m)
	}
	return ds
}
