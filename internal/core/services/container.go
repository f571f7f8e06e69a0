package services

import (
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ContainerConfig carries the configured defaults services fall back on.
type ContainerConfig struct {
	Defaults    domain.SaleDefaults
	DailyTarget decimal.Decimal
}

// NewServiceContainer wires every service over the given repositories.
// cache may be nil, in which case summaries are always computed.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cache portsrepo.SummaryCache, cfg ContainerConfig, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Settings is also the source of sale defaults, so edits to
	// default_commodity and default_unit apply to the next request.
	container.Settings = NewSettingsService(repos.SettingRepo, cfg.DailyTarget, cfg.Defaults, options...)
	container.Commodity = NewCommodityService(repos.CommodityRepo, options...)
	container.Inventory = NewInventoryService(repos.InventoryRepo, container.Settings, options...)
	container.Payments = NewPaymentService(repos.PaymentRepo, options...)

	// The summary engine doubles as the cache invalidator for sale writes.
	summary := NewSummaryService(repos.SaleRepo, repos.InventoryRepo, container.Settings, cache, options...)
	container.Summary = summary

	container.Sales = NewSalesService(
		repos.SaleRepo,
		container.Inventory,
		container.Payments,
		summary,
		container.Settings,
		options...,
	)

	return container
}
