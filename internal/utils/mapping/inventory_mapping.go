package mapping

import (
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/SscSPs/produce_ledger/internal/models"
)

// ToModelInventory converts a domain InventoryRecord to a model Inventory
func ToModelInventory(d domain.InventoryRecord) models.Inventory {
	return models.Inventory{
		ID:                d.ID,
		VegetableType:     d.Commodity,
		InitialStock:      d.InitialStock,
		CurrentStock:      d.CurrentStock,
		UnitType:          d.Unit,
		MarketRate:        d.MarketRate,
		CarryOverFromDate: stringPtr(d.CarryOverFromDate),
		Date:              d.Date,
		TruckArrivalTime:  stringPtr(d.TruckArrivalTime),
		CreatedAt:         d.CreatedAt,
	}
}

// ToDomainInventory converts a model Inventory to a domain InventoryRecord
func ToDomainInventory(m models.Inventory) domain.InventoryRecord {
	return domain.InventoryRecord{
		ID:                m.ID,
		Commodity:         m.VegetableType,
		InitialStock:      m.InitialStock,
		CurrentStock:      m.CurrentStock,
		Unit:              m.UnitType,
		MarketRate:        m.MarketRate,
		CarryOverFromDate: stringValue(m.CarryOverFromDate),
		Date:              m.Date,
		TruckArrivalTime:  stringValue(m.TruckArrivalTime),
		CreatedAt:         m.CreatedAt,
	}
}

// ToDomainInventorySlice converts a slice of model Inventory rows to domain records
func ToDomainInventorySlice(ms []models.Inventory) []domain.InventoryRecord {
	ds := make([]domain.InventoryRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInventory(m)
	}
	return ds
}
