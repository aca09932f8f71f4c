package router

import (
	"github.com/gin-gonic/gin"

	"hexachats_server/internal/handler"
	"hexachats_server/internal/infrastructure/middleware"
)

// RegisterUserRoutes registers auth and profile routes.
func RegisterUserRoutes(r *gin.Engine, h *handler.Handlers, checker middleware.AdminChecker) {
	// public
	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/auth/refreshToken", h.User.RefreshToken)

	userGroup := r.Group("/user")
	userGroup.Use(middleware.JWTAuth())
	{
		userGroup.POST("/logout", h.User.Logout)
		userGroup.GET("/whoami", h.User.Whoami)
		userGroup.GET("/getUserInfo", h.User.GetUserInfo)
		userGroup.POST("/updateUserInfo", h.User.UpdateUserInfo)
		userGroup.POST("/uploadAvatar", h.User.UploadAvatar)

		adminGroup := userGroup.Group("")
		adminGroup.Use(middleware.AdminOnly(checker))
		{
			adminGroup.GET("/getUserInfoList", h.User.GetUserInfoList)
			adminGroup.POST("/ableUsers", h.User.AbleUsers)
			adminGroup.POST("/disableUsers", h.User.DisableUsers)
		}
	}
}
