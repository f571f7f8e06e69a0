package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/produce_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type inventoryRepository struct {
	store *Store
}

var _ portsrepo.InventoryRepositoryFacade = (*inventoryRepository)(nil)

func (r *inventoryRepository) UpsertInventory(_ context.Context, record domain.InventoryRecord) (*domain.InventoryRecord, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := inventoryKey{commodity: record.Commodity, date: record.Date}
	row := mapping.ToModelInventory(record)
	if existing, ok := s.inventory[key]; ok {
		row.ID = existing.ID
	} else {
		s.nextInventoryID++
		row.ID = s.nextInventoryID
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = s.now()
	}
	s.inventory[key] = row

	saved := mapping.ToDomainInventory(row)
	return &saved, nil
}

func (r *inventoryRepository) AdjustCurrentStock(_ context.Context, commodity, date string, delta decimal.Decimal) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := inventoryKey{commodity: commodity, date: date}
	row, ok := s.inventory[key]
	if !ok {
		return false, nil
	}
	row.CurrentStock = row.CurrentStock.Add(delta)
	s.inventory[key] = row
	return true, nil
}

func (r *inventoryRepository) ListInventoryByDate(_ context.Context, date string) ([]domain.InventoryRecord, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []domain.InventoryRecord{}
	for key, row := range s.inventory {
		if key.date == date {
			result = append(result, mapping.ToDomainInventory(row))
		}
	}
	slices.SortFunc(result, func(a, b domain.InventoryRecord) int {
		return strings.Compare(a.Commodity, b.Commodity)
	})
	return result, nil
}
