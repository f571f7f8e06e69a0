package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type settingsService struct {
	BaseService
	settingRepo    portsrepo.SettingRepositoryFacade
	fallbackTarget decimal.Decimal
	fallbackSale   domain.SaleDefaults
}

// NewSettingsService creates the settings store. fallbackTarget and
// fallbackSale are returned whenever the stored value is missing or unreadable.
func NewSettingsService(settingRepo portsrepo.SettingRepositoryFacade, fallbackTarget decimal.Decimal, fallbackSale domain.SaleDefaults, options ...ServiceOption) portssvc.SettingsSvcFacade {
	svc := &settingsService{
		settingRepo:    settingRepo,
		fallbackTarget: fallbackTarget,
		fallbackSale:   fallbackSale,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSetting(ctx context.Context, key, def string) (string, error) {
	setting, err := s.settingRepo.FindSetting(ctx, key)
	if errors.Is(err, apperrors.ErrNotFound) {
		return def, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to read setting", slog.String("key", key))
		return "", err
	}
	return setting.Value, nil
}

func (s *settingsService) SetSetting(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return invalid("setting key is required")
	}
	if key == domain.SettingDailyTarget {
		target, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil || target.IsNegative() {
			return invalid("daily_target must be a non-negative number, got %q", value)
		}
		value = target.String()
	}
	if err := s.settingRepo.SaveSetting(ctx, key, value); err != nil {
		s.LogError(ctx, err, "Failed to save setting", slog.String("key", key))
		return err
	}
	return nil
}

func (s *settingsService) DailyTarget(ctx context.Context) decimal.Decimal {
	raw, err := s.GetSetting(ctx, domain.SettingDailyTarget, s.fallbackTarget.String())
	if err != nil {
		return s.fallbackTarget
	}
	target, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		s.LogWarn(ctx, "Stored daily target is not a number, using default",
			slog.String("value", raw),
			slog.String("default", s.fallbackTarget.String()))
		return s.fallbackTarget
	}
	return target
}

func (s *settingsService) SaleDefaults(ctx context.Context) domain.SaleDefaults {
	return domain.SaleDefaults{
		Commodity: s.stringOr(ctx, domain.SettingDefaultCommodity, s.fallbackSale.Commodity),
		Unit:      s.stringOr(ctx, domain.SettingDefaultUnit, s.fallbackSale.Unit),
	}
}

func (s *settingsService) stringOr(ctx context.Context, key, fallback string) string {
	raw, err := s.GetSetting(ctx, key, fallback)
	if err != nil {
		return fallback
	}
	if value := strings.TrimSpace(raw); value != "" {
		return value
	}
	return fallback
}

// StaticSaleDefaults serves fixed defaults, for callers without a settings store.
type StaticSaleDefaults domain.SaleDefaults

func (d StaticSaleDefaults) SaleDefaults(context.Context) domain.SaleDefaults {
	return domain.SaleDefaults(d)
}
