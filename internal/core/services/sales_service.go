package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
	"github.com/SscSPs/produce_ledger/internal/utils/accounting"
)

// salesService records and deletes sales. The sale row is the only write
// whose failure is reported; inventory, receivable and cache updates that
// follow it are best-effort.
type salesService struct {
	BaseService
	saleRepo    portsrepo.SaleRepositoryFacade
	inventory   portssvc.InventoryConsumerSvc
	payments    portssvc.PaymentChargerSvc
	invalidator portssvc.SummaryInvalidator
	defaults    portssvc.SaleDefaultsSource
}

// NewSalesService creates the sales ledger. invalidator may be nil.
func NewSalesService(
	saleRepo portsrepo.SaleRepositoryFacade,
	inventory portssvc.InventoryConsumerSvc,
	payments portssvc.PaymentChargerSvc,
	invalidator portssvc.SummaryInvalidator,
	defaults portssvc.SaleDefaultsSource,
	options ...ServiceOption,
) portssvc.SalesSvcFacade {
	svc := &salesService{
		saleRepo:    saleRepo,
		inventory:   inventory,
		payments:    payments,
		invalidator: invalidator,
		defaults:    defaults,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.SalesSvcFacade = (*salesService)(nil)

func (s *salesService) GetSale(ctx context.Context, id int64) (*domain.Sale, error) {
	return s.saleRepo.FindSaleByID(ctx, id)
}

func (s *salesService) RecordSale(ctx context.Context, req domain.SaleRequest) (int64, error) {
	in, ok := domain.NormalizeSaleRequest(req, s.defaults.SaleDefaults(ctx))
	if !ok {
		return 0, invalid("unsupported sale request")
	}
	if err := validate.Struct(in); err != nil {
		return 0, validationError(err)
	}
	if !in.Quantity.IsPositive() {
		return 0, invalid("quantity must be greater than zero, got %s", in.Quantity)
	}
	if !in.RatePerUnit.IsPositive() {
		return 0, invalid("ratePerUnit must be greater than zero, got %s", in.RatePerUnit)
	}

	total := accounting.LineTotal(in.Quantity, in.RatePerUnit)
	due, err := accounting.DueAmount(total, in.PaymentStatus, in.AmountPaidNow)
	if err != nil {
		return 0, invalid("%v", err)
	}

	now := s.Now()
	sale := domain.Sale{
		VendorName:       in.VendorName,
		Commodity:        in.Commodity,
		Quantity:         in.Quantity,
		Unit:             in.Unit,
		RatePerUnit:      in.RatePerUnit,
		TotalAmount:      total,
		PaymentMethod:    in.PaymentMethod,
		PaymentStatus:    in.PaymentStatus,
		DueAmount:        due,
		SaleDate:         domain.FormatDate(now),
		SaleTime:         domain.FormatTime(now),
		TruckArrivalTime: in.TruckArrivalTime,
		DistributionTime: in.DistributionTime,
		Notes:            in.Notes,
		CreatedAt:        now.UTC(),
	}

	id, err := s.saleRepo.SaveSale(ctx, sale)
	if err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("vendor", sale.VendorName))
		return 0, err
	}
	sale.ID = id

	if err := s.inventory.ApplyConsumption(ctx, sale.Commodity, sale.Quantity, sale.SaleDate); err != nil {
		s.LogNonCritical(ctx, apperrors.NewNonCriticalWarning("sale.apply_consumption", err), slog.Int64("sale_id", id))
	}
	if sale.IsPending() {
		if err := s.payments.ApplyCharge(ctx, sale.VendorName, sale.DueAmount, sale.SaleDate); err != nil {
			s.LogNonCritical(ctx, apperrors.NewNonCriticalWarning("sale.apply_charge", err), slog.Int64("sale_id", id))
		}
	}
	s.invalidate(ctx)

	s.LogInfo(ctx, "Sale recorded",
		slog.Int64("sale_id", id),
		slog.String("commodity", sale.Commodity),
		slog.String("quantity", sale.Quantity.String()),
		slog.String("status", string(sale.PaymentStatus)))
	return id, nil
}

func (s *salesService) DeleteSale(ctx context.Context, id int64) (bool, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, id)
	if err != nil {
		return false, err
	}

	removed, err := s.saleRepo.DeleteSale(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete sale", slog.Int64("sale_id", id))
		return false, err
	}
	if !removed {
		s.LogWarn(ctx, "Sale vanished before delete, nothing reversed", slog.Int64("sale_id", id))
		return false, nil
	}

	if err := s.inventory.ApplyConsumption(ctx, sale.Commodity, sale.Quantity.Neg(), sale.SaleDate); err != nil {
		s.LogNonCritical(ctx, apperrors.NewNonCriticalWarning("delete.restore_stock", err), slog.Int64("sale_id", id))
	}
	if sale.IsPending() {
		if err := s.payments.ApplyCharge(ctx, sale.VendorName, sale.DueAmount.Neg(), sale.SaleDate); err != nil {
			s.LogNonCritical(ctx, apperrors.NewNonCriticalWarning("delete.reverse_charge", err), slog.Int64("sale_id", id))
		}
	}
	s.invalidate(ctx)

	s.LogInfo(ctx, "Sale deleted", slog.Int64("sale_id", id))
	return true, nil
}

func (s *salesService) invalidate(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.InvalidateSummaries(ctx); err != nil {
		s.LogNonCritical(ctx, apperrors.NewNonCriticalWarning("summary.invalidate", err))
	}
}
