package router

import (
	"github.com/gin-gonic/gin"

	"hexachats_server/internal/handler"
	"hexachats_server/internal/infrastructure/middleware"
)

// RegisterOrderRoutes registers order placement for users and the order
// workflow for admins.
func RegisterOrderRoutes(r *gin.Engine, h *handler.Handlers, checker middleware.AdminChecker) {
	orderGroup := r.Group("/order")
	orderGroup.Use(middleware.JWTAuth())
	{
		orderGroup.POST("/placeOrder", h.Order.PlaceOrder)
		orderGroup.GET("/getMyOrders", h.Order.GetMyOrders)

		adminGroup := orderGroup.Group("")
		adminGroup.Use(middleware.AdminOnly(checker))
		{
			adminGroup.GET("/getOrderList", h.Order.GetOrderList)
			adminGroup.POST("/updateOrderStatus", h.Order.UpdateOrderStatus)
		}
	}
}
