package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
)

var knownUnits = map[string]bool{
	domain.UnitTrays:    true,
	domain.UnitSacks:    true,
	domain.UnitBoxes:    true,
	domain.UnitKg:       true,
	domain.UnitQuintals: true,
}

type commodityService struct {
	BaseService
	commodityRepo portsrepo.CommodityRepositoryFacade
}

func NewCommodityService(commodityRepo portsrepo.CommodityRepositoryFacade, options ...ServiceOption) portssvc.CommoditySvcFacade {
	svc := &commodityService{commodityRepo: commodityRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.CommoditySvcFacade = (*commodityService)(nil)

func (s *commodityService) ListCommodityTypes(ctx context.Context) ([]domain.CommodityType, error) {
	return s.commodityRepo.ListCommodityTypes(ctx)
}

func (s *commodityService) AddCommodityType(ctx context.Context, name, defaultUnit string) (*domain.CommodityType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("commodity name is required")
	}
	unit := strings.ToLower(strings.TrimSpace(defaultUnit))
	if unit == "" {
		unit = domain.UnitTrays
	}
	if !knownUnits[unit] {
		return nil, invalid("defaultUnit must be one of trays, sacks, boxes, kg, quintals; got %q", defaultUnit)
	}

	saved, err := s.commodityRepo.SaveCommodityType(ctx, domain.CommodityType{
		Name:        name,
		DefaultUnit: unit,
		IsActive:    true,
		CreatedAt:   s.Now().UTC(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add commodity type", slog.String("name", name))
		return nil, err
	}
	return saved, nil
}
