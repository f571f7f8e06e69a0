package repositories

import (
	"context"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
)

// SettingRepositoryFacade covers the key/value settings table.
type SettingRepositoryFacade interface {
	// FindSetting returns the setting or apperrors.ErrNotFound.
	FindSetting(ctx context.Context, key string) (*domain.Setting, error)

	// SaveSetting overwrites (or creates) a setting.
	SaveSetting(ctx context.Context, key, value string) error
}
