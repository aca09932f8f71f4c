package router

import (
	"github.com/gin-gonic/gin"

	"hexachats_server/internal/handler"
	"hexachats_server/internal/infrastructure/middleware"
)

// RegisterMessageRoutes registers the HTTP chat routes.
func RegisterMessageRoutes(r *gin.Engine, h *handler.Handlers) {
	messageGroup := r.Group("/message")
	messageGroup.Use(middleware.JWTAuth())
	{
		messageGroup.POST("/sendMessage", h.Message.SendMessage)
		messageGroup.GET("/getMessageList", h.Message.GetMessageList)
		messageGroup.POST("/markRead", h.Message.MarkRead)
	}
}
