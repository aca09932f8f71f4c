package router

import (
	"github.com/gin-gonic/gin"

	"hexachats_server/internal/handler"
	"hexachats_server/internal/infrastructure/middleware"
)

// RegisterCallsRoutes registers the call log routes.
func RegisterCallsRoutes(r *gin.Engine, h *handler.Handlers) {
	callsGroup := r.Group("/calls")
	callsGroup.Use(middleware.JWTAuth())
	{
		callsGroup.POST("/addCallRecord", h.Calls.AddCallRecord)
		callsGroup.GET("/getCallRecordList", h.Calls.GetCallRecordList)
	}
}
