package router

import (
	"github.com/gin-gonic/gin"

	"hexachats_server/internal/handler"
	"hexachats_server/internal/infrastructure/middleware"
)

// RegisterStatusRoutes registers the status record routes.
func RegisterStatusRoutes(r *gin.Engine, h *handler.Handlers) {
	statusGroup := r.Group("/status")
	statusGroup.Use(middleware.JWTAuth())
	{
		statusGroup.POST("/addStatus", h.Status.AddStatus)
		statusGroup.GET("/getStatusList", h.Status.GetStatusList)
	}
}
