package services

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
	"github.com/SscSPs/produce_ledger/internal/utils/accounting"
	"github.com/SscSPs/produce_ledger/internal/utils/pagination"
)

const (
	defaultRecentSalesLimit = 100
	maxRecentSalesLimit     = 500

	allTimeCacheKey   = "totals:all"
	dailyCacheKeyBase = "totals:date:"
)

// SummaryService computes read-only views over the sales and inventory
// ledgers. Sales totals go through cache; inventory is always read live.
type SummaryService struct {
	BaseService
	saleRepo      portsrepo.SaleReader
	inventoryRepo portsrepo.InventoryReader
	settings      portssvc.SettingsSvcFacade
	cache         portsrepo.SummaryCache

	// generation advances on every invalidation; totals computed under an
	// older generation are returned but not cached.
	generation atomic.Uint64
}

// NewSummaryService creates the summary engine. cache may be nil.
func NewSummaryService(
	saleRepo portsrepo.SaleReader,
	inventoryRepo portsrepo.InventoryReader,
	settings portssvc.SettingsSvcFacade,
	cache portsrepo.SummaryCache,
	options ...ServiceOption,
) *SummaryService {
	svc := &SummaryService{
		saleRepo:      saleRepo,
		inventoryRepo: inventoryRepo,
		settings:      settings,
		cache:         cache,
	}
	svc.apply(options)
	return svc
}

var (
	_ portssvc.SummarySvcFacade   = (*SummaryService)(nil)
	_ portssvc.SummaryInvalidator = (*SummaryService)(nil)
)

func (s *SummaryService) TodaysSummary(ctx context.Context) (*domain.DailySummary, error) {
	return s.SummaryForDate(ctx, domain.FormatDate(s.Now()))
}

func (s *SummaryService) SummaryForDate(ctx context.Context, date string) (*domain.DailySummary, error) {
	if err := domain.ValidateDate("date", date); err != nil {
		return nil, err
	}

	totals, err := s.totals(ctx, dailyCacheKeyBase+date, domain.SaleFilter{StartDate: date, EndDate: date})
	if err != nil {
		return nil, err
	}

	inventory, err := s.inventoryRepo.ListInventoryByDate(ctx, date)
	if err != nil {
		s.LogNonCritical(ctx, apperrors.NewNonCriticalWarning("summary.inventory", err), slog.String("date", date))
		inventory = []domain.InventoryRecord{}
	}

	target := s.settings.DailyTarget(ctx)
	return &domain.DailySummary{
		Date:                date,
		SalesTotals:         *totals,
		DailyTarget:         target,
		RemainingToTarget:   accounting.RemainingToTarget(target, totals.TotalQuantitySold),
		Inventory:           inventory,
		TotalInventoryValue: accounting.InventoryValue(inventory),
	}, nil
}

func (s *SummaryService) DateRangeSummary(ctx context.Context, startDate, endDate string, filter domain.SaleFilter) (*domain.SalesReport, error) {
	if err := domain.ValidateDate("startDate", startDate); err != nil {
		return nil, err
	}
	if err := domain.ValidateDate("endDate", endDate); err != nil {
		return nil, err
	}
	if startDate > endDate {
		return nil, invalid("startDate %s is after endDate %s", startDate, endDate)
	}
	filter.StartDate = startDate
	filter.EndDate = endDate

	sales, err := s.saleRepo.ListSales(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales for range",
			slog.String("start", startDate),
			slog.String("end", endDate))
		return nil, err
	}
	return &domain.SalesReport{
		Filter: filter,
		Sales:  sales,
		Totals: accounting.SumSales(sales),
	}, nil
}

func (s *SummaryService) AllTimeSummary(ctx context.Context) (*domain.SalesTotals, error) {
	return s.totals(ctx, allTimeCacheKey, domain.SaleFilter{})
}

func (s *SummaryService) RecentSales(ctx context.Context, limit int, pageToken string) (*domain.SalesPage, error) {
	if limit <= 0 {
		limit = defaultRecentSalesLimit
	}
	if limit > maxRecentSalesLimit {
		limit = maxRecentSalesLimit
	}

	var after *domain.SaleCursor
	if pageToken != "" {
		cursor, err := pagination.DecodeSaleCursor(pageToken)
		if err != nil {
			return nil, invalid("%v", err)
		}
		after = cursor
	}

	// One extra row tells us whether another page exists.
	sales, err := s.saleRepo.ListRecentSales(ctx, limit+1, after)
	if err != nil {
		return nil, err
	}

	page := &domain.SalesPage{Sales: sales}
	if len(sales) > limit {
		page.Sales = sales[:limit]
		last := page.Sales[limit-1]
		token := pagination.EncodeSaleCursor(domain.SaleCursor{SaleDate: last.SaleDate, SaleTime: last.SaleTime, ID: last.ID})
		page.NextToken = &token
	}
	return page, nil
}

// InvalidateSummaries drops every cached total. Called after each sale write.
func (s *SummaryService) InvalidateSummaries(ctx context.Context) error {
	s.generation.Add(1)
	if s.cache == nil {
		return nil
	}
	return s.cache.Clear(ctx)
}

func (s *SummaryService) totals(ctx context.Context, key string, filter domain.SaleFilter) (*domain.SalesTotals, error) {
	if s.cache != nil {
		cached, err := s.cache.GetTotals(ctx, key)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogNonCritical(ctx, apperrors.NewNonCriticalWarning("summary.cache_get", err), slog.String("key", key))
		}
	}

	generation := s.generation.Load()
	sales, err := s.saleRepo.ListSales(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales for totals", slog.String("key", key))
		return nil, err
	}
	totals := accounting.SumSales(sales)

	if s.cache != nil {
		if s.generation.Load() != generation {
			s.LogDebug(ctx, "Sales changed while computing totals, not caching", slog.String("key", key))
			return &totals, nil
		}
		if err := s.cache.SetTotals(ctx, key, totals); err != nil {
			s.LogNonCritical(ctx, apperrors.NewNonCriticalWarning("summary.cache_set", err), slog.String("key", key))
		}
	}
	return &totals, nil
}
