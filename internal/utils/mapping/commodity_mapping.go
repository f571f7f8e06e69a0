package mapping

import (
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/SscSPs/produce_ledger/internal/models"
)

// ToModelVegetableType converts a domain CommodityType to a model VegetableType
func ToModelVegetableType(d domain.CommodityType) models.VegetableType {
	return models.VegetableType{
		ID:          d.ID,
		Name:        d.Name,
		DefaultUnit: d.DefaultUnit,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainCommodityType converts a model VegetableType to a domain CommodityType
func ToDomainCommodityType(m models.VegetableType) domain.CommodityType {
	return domain.CommodityType{
		ID:          m.ID,
		Name:        m.Name,
		DefaultUnit: m.DefaultUnit,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainCommodityTypeSlice converts a slice of model rows to domain commodity types
func ToDomainCommodityTypeSlice(ms []models.VegetableType) []domain.CommodityType {
	ds := make([]domain.CommodityType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCommodityType(m)
	}
	return ds
}
