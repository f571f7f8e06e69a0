package services

import (
	"context"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleDefaultsSource supplies the commodity and unit assumed when a request omits them.
type SaleDefaultsSource interface {
	SaleDefaults(ctx context.Context) domain.SaleDefaults
}

// SettingsSvcFacade exposes key/value settings.
type SettingsSvcFacade interface {
	// GetSetting returns the stored value or def if the key is absent.
	GetSetting(ctx context.Context, key, def string) (string, error)

	// SetSetting overwrites a value.
	SetSetting(ctx context.Context, key, value string) error

	// DailyTarget returns the configured daily sales target, falling back to the default.
	DailyTarget(ctx context.Context) decimal.Decimal

	// SaleDefaults reads default_commodity and default_unit, falling back to
	// the configured defaults for blank or unreadable values.
	SaleDefaultsSource
}
