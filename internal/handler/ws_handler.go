package handler

import (
	"github.com/gin-gonic/gin"

	"hexachats_server/internal/infrastructure/middleware"
	"hexachats_server/internal/service/chat"
	"hexachats_server/pkg/errorx"
)

// WsLoginHandler handles GET /ws: upgrades the connection and registers
// it with the broker under the authenticated user's uuid. A client_id
// query param, if sent, must match the token.
func WsLoginHandler(c *gin.Context) {
	userId := c.GetString(middleware.ContextUserKey)
	if clientId := c.Query("client_id"); clientId != "" && clientId != userId {
		HandleError(c, errorx.New(errorx.CodeForbidden, "client_id does not match token"))
		return
	}
	chat.NewClientInit(c, userId)
}

// WsLogoutHandler handles POST /ws/logout, tearing the caller's
// connection down server-side.
func WsLogoutHandler(c *gin.Context) {
	userId := c.GetString(middleware.ContextUserKey)
	if err := chat.ClientLogout(userId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
