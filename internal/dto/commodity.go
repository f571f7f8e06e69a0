package dto

import "github.com/SscSPs/produce_ledger/internal/core/domain"

// AddCommodityRequest adds a commodity to the catalog.
type AddCommodityRequest struct {
	Name        string `json:"name" binding:"required"`
	DefaultUnit string `json:"defaultUnit"`
}

// ListCommoditiesResponse lists active commodities by name.
type ListCommoditiesResponse struct {
	Commodities []domain.CommodityType `json:"commodities"`
}
