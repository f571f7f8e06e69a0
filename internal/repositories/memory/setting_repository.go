package memory

import (
	"context"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/produce_ledger/internal/models"
	"github.com/SscSPs/produce_ledger/internal/utils/mapping"
)

type settingRepository struct {
	store *Store
}

var _ portsrepo.SettingRepositoryFacade = (*settingRepository)(nil)

func (r *settingRepository) FindSetting(_ context.Context, key string) (*domain.Setting, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.settings[key]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	setting := mapping.ToDomainSetting(row)
	return &setting, nil
}

func (r *settingRepository) SaveSetting(_ context.Context, key, value string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.settings[key]
	if !ok {
		s.nextSettingID++
		row = models.Setting{ID: s.nextSettingID, Key: key}
	}
	row.Value = value
	row.UpdatedAt = s.now()
	s.settings[key] = row
	return nil
}
