package handler

import (
	"github.com/gin-gonic/gin"

	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/infrastructure/middleware"
	"hexachats_server/internal/service"
)

// CallsHandler serves the call log endpoints.
type CallsHandler struct {
	callSvc service.CallService
}

func NewCallsHandler(callSvc service.CallService) *CallsHandler {
	return &CallsHandler{callSvc: callSvc}
}

// AddCallRecord handles POST /calls/addCallRecord.
func (h *CallsHandler) AddCallRecord(c *gin.Context) {
	var req request.AddCallRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	userId := c.GetString(middleware.ContextUserKey)
	data, err := h.callSvc.AddCallRecord(userId, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetCallRecordList handles GET /calls/getCallRecordList.
func (h *CallsHandler) GetCallRecordList(c *gin.Context) {
	userId := c.GetString(middleware.ContextUserKey)
	data, err := h.callSvc.GetCallRecordList(userId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
