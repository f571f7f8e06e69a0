package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing ledger functionality and
// is used by the handlers and the scheduler.
type ServiceContainer struct {
	Sales     SalesSvcFacade
	Inventory InventorySvcFacade
	Payments  PaymentSvcFacade
	Summary   SummarySvcFacade
	Settings  SettingsSvcFacade
	Commodity CommoditySvcFacade
}
