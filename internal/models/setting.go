package models

import "time"

// Setting mirrors a row of the settings table.
type Setting struct {
	ID        int64
	Key       string
	Value     string
	UpdatedAt time.Time
}
