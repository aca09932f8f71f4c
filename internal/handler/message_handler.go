package handler

import (
	"github.com/gin-gonic/gin"

	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/infrastructure/middleware"
	"hexachats_server/internal/service"
)

// MessageHandler serves the HTTP chat endpoints.
type MessageHandler struct {
	messageSvc service.MessageService
}

func NewMessageHandler(messageSvc service.MessageService) *MessageHandler {
	return &MessageHandler{messageSvc: messageSvc}
}

// SendMessage handles POST /message/sendMessage.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	userId := c.GetString(middleware.ContextUserKey)
	data, err := h.messageSvc.SendMessage(userId, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMessageList handles GET /message/getMessageList?peer_id=&limit=.
func (h *MessageHandler) GetMessageList(c *gin.Context) {
	var req request.GetMessageListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	userId := c.GetString(middleware.ContextUserKey)
	data, err := h.messageSvc.GetMessageList(userId, req.PeerId, req.Limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// MarkRead handles POST /message/markRead.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	var req request.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	userId := c.GetString(middleware.ContextUserKey)
	if err := h.messageSvc.MarkRead(userId, req.PeerId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
