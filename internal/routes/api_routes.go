package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sachin6736/crmproject-sub002/internal/handlers"
)

// RegisterAPIRoutes registers all authenticated API routes.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	apiGroup := api.Group("/api")
	{
		orders := apiGroup.Group("/orders")
		{
			orders.GET("", handlers.ListOrdersHandler)
			orders.POST("", handlers.CreateOrderHandler)
			orders.GET("/aggregate", handlers.GetOrderAggregateHandler)
			orders.GET("/export", handlers.ExportOrdersHandler)
			orders.GET("/:id", handlers.GetOrderHandler)
			orders.DELETE("/:id", handlers.DeleteOrderHandler)
			orders.PATCH("/:id/status", handlers.UpdateOrderStatusHandler)
			orders.POST("/:id/vendors", handlers.AddVendorHandler)
			orders.PATCH("/:id/vendors/:vendorId/po-status", handlers.UpdateVendorPoStatusHandler)
		}

		leads := apiGroup.Group("/leads")
		{
			leads.GET("", handlers.ListLeadsHandler)
			leads.POST("", handlers.CreateLeadHandler)
			leads.GET("/:id", handlers.GetLeadHandler)
			leads.PATCH("/:id/status", handlers.UpdateLeadStatusHandler)
			leads.POST("/:id/dates", handlers.AddImportantDateHandler)
		}

		apiGroup.GET("/statuses", handlers.ListStatusCatalogHandler)
	}
}
