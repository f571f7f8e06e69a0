package repositories

import (
	"context"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
)

// CommodityReader defines read operations for the commodity catalog
type CommodityReader interface {
	// ListCommodityTypes returns active commodity types ordered by name.
	ListCommodityTypes(ctx context.Context) ([]domain.CommodityType, error)
}

// CommodityWriter defines write operations for the commodity catalog
type CommodityWriter interface {
	// SaveCommodityType inserts a new type. Returns apperrors.ErrDuplicate if the name exists.
	SaveCommodityType(ctx context.Context, commodity domain.CommodityType) (*domain.CommodityType, error)
}

// CommodityRepositoryFacade combines all commodity-related repository interfaces
type CommodityRepositoryFacade interface {
	CommodityReader
	CommodityWriter
}
