package services

import (
	"context"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
)

// CommoditySvcFacade manages the commodity catalog.
type CommoditySvcFacade interface {
	ListCommodityTypes(ctx context.Context) ([]domain.CommodityType, error)
	AddCommodityType(ctx context.Context, name, defaultUnit string) (*domain.CommodityType, error)
}
