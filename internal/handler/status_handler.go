package handler

import (
	"github.com/gin-gonic/gin"

	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/infrastructure/middleware"
	"hexachats_server/internal/service"
)

// StatusHandler serves the status record endpoints.
type StatusHandler struct {
	statusSvc service.StatusService
}

func NewStatusHandler(statusSvc service.StatusService) *StatusHandler {
	return &StatusHandler{statusSvc: statusSvc}
}

// AddStatus handles POST /status/addStatus.
func (h *StatusHandler) AddStatus(c *gin.Context) {
	var req request.AddStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	userId := c.GetString(middleware.ContextUserKey)
	data, err := h.statusSvc.AddStatus(userId, req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetStatusList handles GET /status/getStatusList?user_id=. Without
// user_id it lists the caller's own statuses.
func (h *StatusHandler) GetStatusList(c *gin.Context) {
	var req request.GetStatusListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	userId := req.UserId
	if userId == "" {
		userId = c.GetString(middleware.ContextUserKey)
	}
	data, err := h.statusSvc.GetStatusList(userId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
