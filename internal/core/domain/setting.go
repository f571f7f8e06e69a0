package domain

import "time"

// Well-known setting keys.
const (
	SettingDailyTarget       = "daily_target"
	SettingDefaultCommodity  = "default_commodity"
	SettingDefaultUnit       = "default_unit"
	SettingBusinessOpenTime  = "business_open_time"
	SettingBusinessCloseTime = "business_close_time"
)

// Setting is a single key/value configuration entry.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultSettings are written at first initialization and never overwrite
// existing values.
func DefaultSettings(defaultCommodity, defaultUnit, dailyTarget string) map[string]string {
	return map[string]string{
		SettingDailyTarget:       dailyTarget,
		SettingDefaultCommodity:  defaultCommodity,
		SettingDefaultUnit:       defaultUnit,
		SettingBusinessOpenTime:  "06:00",
		SettingBusinessCloseTime: "18:00",
	}
}

// SeedData is written by SchemaStore initialization when absent.
type SeedData struct {
	Settings    map[string]string
	Commodities []CommodityType
}

// DefaultSeed returns the settings and commodity catalog for a fresh store.
func DefaultSeed(defaults SaleDefaults, dailyTarget string) SeedData {
	return SeedData{
		Settings:    DefaultSettings(defaults.Commodity, defaults.Unit, dailyTarget),
		Commodities: DefaultCommodityTypes(),
	}
}
