package models

import "time"

// VegetableType mirrors a row of the vegetable_types table.
type VegetableType struct {
	ID          int64
	Name        string
	DefaultUnit string
	IsActive    bool
	CreatedAt   time.Time
}
