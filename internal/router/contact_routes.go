package router

import (
	"github.com/gin-gonic/gin"

	"hexachats_server/internal/handler"
	"hexachats_server/internal/infrastructure/middleware"
)

// RegisterContactRoutes registers the contact list routes.
func RegisterContactRoutes(r *gin.Engine, h *handler.Handlers) {
	contactGroup := r.Group("/contact")
	contactGroup.Use(middleware.JWTAuth())
	{
		contactGroup.POST("/addContact", h.Contact.AddContact)
		contactGroup.GET("/getContactList", h.Contact.GetContactList)
		contactGroup.POST("/removeContact", h.Contact.RemoveContact)
	}
}
