package router

import (
	"github.com/gin-gonic/gin"

	"hexachats_server/internal/handler"
	"hexachats_server/internal/infrastructure/middleware"
)

// RegisterWebSocketRoutes registers the realtime entry point.
// Clients connect with ws(s)://host:port/ws and their Bearer token.
func RegisterWebSocketRoutes(r *gin.Engine) {
	wsGroup := r.Group("")
	wsGroup.Use(middleware.JWTAuth())
	{
		wsGroup.GET("/ws", handler.WsLoginHandler)
		wsGroup.POST("/ws/logout", handler.WsLogoutHandler)
	}
}
