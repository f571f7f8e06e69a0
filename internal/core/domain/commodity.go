package domain

import "time"

// Units a commodity can be sold in.
const (
	UnitTrays    = "trays"
	UnitSacks    = "sacks"
	UnitBoxes    = "boxes"
	UnitKg       = "kg"
	UnitQuintals = "quintals"
)

// CommodityType is a produce type the business trades in.
type CommodityType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DefaultUnit string    `json:"defaultUnit"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DefaultCommodityTypes seeds the catalog on a fresh store.
func DefaultCommodityTypes() []CommodityType {
	return []CommodityType{
		{Name: "Tomatoes", DefaultUnit: UnitTrays, IsActive: true},
		{Name: "Onions", DefaultUnit: UnitSacks, IsActive: true},
		{Name: "Potatoes", DefaultUnit: UnitSacks, IsActive: true},
		{Name: "Carrots", DefaultUnit: UnitKg, IsActive: true},
		{Name: "Cabbage", DefaultUnit: UnitKg, IsActive: true},
	}
}
