package router

import (
	"github.com/gin-gonic/gin"

	"hexachats_server/internal/handler"
	"hexachats_server/internal/infrastructure/middleware"
)

// RegisterCatalogRoutes registers the catalog routes. The listing is
// public so visitors can browse before signing up; mutations and the
// full listing are admin only.
func RegisterCatalogRoutes(r *gin.Engine, h *handler.Handlers, checker middleware.AdminChecker) {
	r.GET("/catalog/getServiceList", h.Catalog.GetServiceList)

	adminGroup := r.Group("/catalog")
	adminGroup.Use(middleware.JWTAuth(), middleware.AdminOnly(checker))
	{
		adminGroup.GET("/getFullServiceList", h.Catalog.GetFullServiceList)
		adminGroup.POST("/addService", h.Catalog.AddService)
		adminGroup.POST("/deleteServices", h.Catalog.DeleteServices)
		adminGroup.POST("/setServicesActive", h.Catalog.SetServicesActive)
	}
}
