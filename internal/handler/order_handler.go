package handler

import (
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/infrastructure/middleware"
	"hexachats_server/internal/service"
	"hexachats_server/pkg/constants"
	"hexachats_server/pkg/errorx"
)

// OrderHandler serves order placement and the admin order workflow.
type OrderHandler struct {
	orderSvc service.OrderService
}

func NewOrderHandler(orderSvc service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

// PlaceOrder handles POST /order/placeOrder: multipart form fields plus
// the proof-of-payment image in the "proof" file field.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req request.PlaceOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	file, err := c.FormFile("proof")
	if err != nil {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "proof of payment required"))
		return
	}
	if file.Size > constants.PROOF_MAX_SIZE {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "proof image too large"))
		return
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "proof must be an image"))
		return
	}

	src, err := file.Open()
	if err != nil {
		HandleError(c, errorx.Wrap(err, errorx.CodeServerBusy, "open proof upload"))
		return
	}
	defer src.Close()
	data, err := io.ReadAll(io.LimitReader(src, constants.PROOF_MAX_SIZE+1))
	if err != nil {
		HandleError(c, errorx.Wrap(err, errorx.CodeServerBusy, "read proof upload"))
		return
	}

	userId := c.GetString(middleware.ContextUserKey)
	proof := &request.ProofUpload{
		Filename:    file.Filename,
		ContentType: contentType,
		Data:        data,
	}
	rsp, err := h.orderSvc.PlaceOrder(userId, req, proof)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, rsp)
}

// GetMyOrders handles GET /order/getMyOrders.
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userId := c.GetString(middleware.ContextUserKey)
	data, err := h.orderSvc.GetMyOrders(userId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetOrderList handles GET /order/getOrderList?page=&page_size= (admin).
func (h *OrderHandler) GetOrderList(c *gin.Context) {
	var req request.GetOrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.orderSvc.GetOrderList(req.Page, req.PageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateOrderStatus handles POST /order/updateOrderStatus (admin).
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.orderSvc.UpdateOrderStatus(req.OrderUuid, req.Status); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
