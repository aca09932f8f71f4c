// Package router wires the HTTP surface: public routes, authenticated
// groups and the admin gate.
package router

import (
	"github.com/gin-gonic/gin"

	"hexachats_server/internal/handler"
	"hexachats_server/internal/infrastructure/middleware"
)

// RegisterRoutes registers every route group. checker backs the admin
// gate, normally the user service.
func RegisterRoutes(r *gin.Engine, h *handler.Handlers, checker middleware.AdminChecker) {
	RegisterUserRoutes(r, h, checker)
	RegisterContactRoutes(r, h)
	RegisterMessageRoutes(r, h)
	RegisterStatusRoutes(r, h)
	RegisterCallsRoutes(r, h)
	RegisterCatalogRoutes(r, h, checker)
	RegisterOrderRoutes(r, h, checker)
	RegisterWebSocketRoutes(r)
}
