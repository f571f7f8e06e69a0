package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/produce_ledger/internal/utils/mapping"
)

type commodityRepository struct {
	store *Store
}

var _ portsrepo.CommodityRepositoryFacade = (*commodityRepository)(nil)

func (r *commodityRepository) ListCommodityTypes(_ context.Context) ([]domain.CommodityType, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []domain.CommodityType{}
	for _, row := range s.commodities {
		if row.IsActive {
			result = append(result, mapping.ToDomainCommodityType(row))
		}
	}
	slices.SortFunc(result, func(a, b domain.CommodityType) int {
		return strings.Compare(a.Name, b.Name)
	})
	return result, nil
}

func (r *commodityRepository) SaveCommodityType(_ context.Context, commodity domain.CommodityType) (*domain.CommodityType, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.commodities[commodity.Name]; exists {
		return nil, fmt.Errorf("%w: commodity type %q", apperrors.ErrDuplicate, commodity.Name)
	}
	s.nextCommodityID++
	row := mapping.ToModelVegetableType(commodity)
	row.ID = s.nextCommodityID
	if row.CreatedAt.IsZero() {
		row.CreatedAt = s.now()
	}
	s.commodities[row.Name] = row

	saved := mapping.ToDomainCommodityType(row)
	return &saved, nil
}
