package handlers

import (
	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// middlewares apply to the /api/v1 group only, so health checks are never rate limited.
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	middlewares ...gin.HandlerFunc,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services, middlewares...)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	middlewares ...gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1", middlewares...)

	RegisterSalesRoutes(v1, services.Sales, services.Summary)
	RegisterInventoryRoutes(v1, services.Inventory)
	RegisterPaymentRoutes(v1, services.Payments)
	RegisterSummaryRoutes(v1, services.Summary)
	RegisterSettingsRoutes(v1, services.Settings)
	RegisterCommodityRoutes(v1, services.Commodity)
}
