package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryRepositoryFacade
	defaults      portssvc.SaleDefaultsSource
}

// NewInventoryService creates the stock ledger. Intakes that omit a unit take
// the one defaults reports.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade, defaults portssvc.SaleDefaultsSource, options ...ServiceOption) portssvc.InventorySvcFacade {
	svc := &inventoryService{
		inventoryRepo: inventoryRepo,
		defaults:      defaults,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func (s *inventoryService) GetByDate(ctx context.Context, date string) ([]domain.InventoryRecord, error) {
	if err := domain.ValidateDate("date", date); err != nil {
		return nil, err
	}
	return s.inventoryRepo.ListInventoryByDate(ctx, date)
}

// Intake replaces any existing record for the same commodity and day; current stock restarts at initial stock.
func (s *inventoryService) Intake(ctx context.Context, input domain.IntakeInput) (*domain.InventoryRecord, error) {
	commodity := strings.TrimSpace(input.Commodity)
	if commodity == "" {
		return nil, invalid("commodity is required")
	}
	if err := domain.ValidateDate("date", input.Date); err != nil {
		return nil, err
	}
	if input.CarryOverFromDate != "" {
		if err := domain.ValidateDate("carryOverFromDate", input.CarryOverFromDate); err != nil {
			return nil, err
		}
	}
	if input.InitialStock.IsNegative() {
		return nil, invalid("initialStock cannot be negative, got %s", input.InitialStock)
	}
	if input.MarketRate.IsNegative() {
		return nil, invalid("marketRate cannot be negative, got %s", input.MarketRate)
	}
	unit := strings.TrimSpace(input.Unit)
	if unit == "" {
		unit = s.defaults.SaleDefaults(ctx).Unit
	}

	record, err := s.inventoryRepo.UpsertInventory(ctx, domain.InventoryRecord{
		Commodity:         commodity,
		InitialStock:      input.InitialStock,
		CurrentStock:      input.InitialStock,
		Unit:              unit,
		MarketRate:        input.MarketRate,
		Date:              input.Date,
		CarryOverFromDate: input.CarryOverFromDate,
		TruckArrivalTime:  input.TruckArrivalTime,
		CreatedAt:         s.Now().UTC(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save inventory", slog.String("commodity", commodity), slog.String("date", input.Date))
		return nil, err
	}
	return record, nil
}

// ApplyConsumption is a no-op when the commodity has no record for date.
func (s *inventoryService) ApplyConsumption(ctx context.Context, commodity string, quantity decimal.Decimal, date string) error {
	if quantity.IsZero() {
		return nil
	}
	found, err := s.inventoryRepo.AdjustCurrentStock(ctx, commodity, date, quantity.Neg())
	if err != nil {
		return err
	}
	if !found {
		s.LogDebug(ctx, "No inventory record for sale, stock not adjusted",
			slog.String("commodity", commodity),
			slog.String("date", date))
	}
	return nil
}

// CarryOver creates toDate records from every fromDate record that still holds stock.
func (s *inventoryService) CarryOver(ctx context.Context, fromDate, toDate string) ([]domain.InventoryRecord, error) {
	if err := domain.ValidateDate("fromDate", fromDate); err != nil {
		return nil, err
	}
	if err := domain.ValidateDate("toDate", toDate); err != nil {
		return nil, err
	}
	if fromDate == toDate {
		return nil, invalid("cannot carry stock over onto the same date %s", fromDate)
	}

	previous, err := s.inventoryRepo.ListInventoryByDate(ctx, fromDate)
	if err != nil {
		return nil, err
	}

	carried := []domain.InventoryRecord{}
	for _, rec := range previous {
		if !rec.CurrentStock.IsPositive() {
			continue
		}
		next, err := s.Intake(ctx, domain.IntakeInput{
			Commodity:         rec.Commodity,
			InitialStock:      rec.CurrentStock,
			Unit:              rec.Unit,
			MarketRate:        rec.MarketRate,
			Date:              toDate,
			CarryOverFromDate: fromDate,
		})
		if err != nil {
			return carried, err
		}
		carried = append(carried, *next)
	}

	s.LogInfo(ctx, "Stock carried over",
		slog.String("from", fromDate),
		slog.String("to", toDate),
		slog.Int("records", len(carried)))
	return carried, nil
}
