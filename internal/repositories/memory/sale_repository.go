package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/produce_ledger/internal/utils/mapping"
)

type saleRepository struct {
	store *Store
}

var _ portsrepo.SaleRepositoryFacade = (*saleRepository)(nil)

func (r *saleRepository) SaveSale(_ context.Context, sale domain.Sale) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSaleID++
	row := mapping.ToModelSale(sale)
	row.ID = s.nextSaleID
	if row.CreatedAt.IsZero() {
		row.CreatedAt = s.now()
	}
	s.sales[row.ID] = row
	return row.ID, nil
}

func (r *saleRepository) FindSaleByID(_ context.Context, id int64) (*domain.Sale, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.sales[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	sale := mapping.ToDomainSale(row, s.defaults)
	return &sale, nil
}

func (r *saleRepository) DeleteSale(_ context.Context, id int64) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sales[id]; !ok {
		return false, nil
	}
	delete(s.sales, id)
	return true, nil
}

func (r *saleRepository) ListSales(_ context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	vendorQuery := strings.ToLower(strings.TrimSpace(filter.VendorQuery))
	result := []domain.Sale{}
	for _, row := range s.sales {
		sale := mapping.ToDomainSale(row, s.defaults)
		if filter.StartDate != "" && sale.SaleDate < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && sale.SaleDate > filter.EndDate {
			continue
		}
		if filter.Commodity != "" && sale.Commodity != filter.Commodity {
			continue
		}
		if filter.PaymentStatus != "" && sale.PaymentStatus != filter.PaymentStatus {
			continue
		}
		if filter.PaymentMethod != "" && sale.PaymentMethod != filter.PaymentMethod {
			continue
		}
		if vendorQuery != "" && !strings.Contains(strings.ToLower(sale.VendorName), vendorQuery) {
			continue
		}
		result = append(result, sale)
	}
	sortNewestFirst(result)
	return result, nil
}

func (r *saleRepository) ListRecentSales(ctx context.Context, limit int, after *domain.SaleCursor) ([]domain.Sale, error) {
	all, err := r.ListSales(ctx, domain.SaleFilter{})
	if err != nil {
		return nil, err
	}
	result := make([]domain.Sale, 0, limit)
	for _, sale := range all {
		if after != nil && !after.Before(sale) {
			continue
		}
		if len(result) == limit {
			break
		}
		result = append(result, sale)
	}
	return result, nil
}

// sortNewestFirst orders by sale_date desc, sale_time desc, id desc.
func sortNewestFirst(sales []domain.Sale) {
	slices.SortFunc(sales, func(a, b domain.Sale) int {
		if c := cmp.Compare(b.SaleDate, a.SaleDate); c != 0 {
			return c
		}
		if c := cmp.Compare(b.SaleTime, a.SaleTime); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}
