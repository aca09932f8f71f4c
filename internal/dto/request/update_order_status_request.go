package request

// UpdateOrderStatusRequest moves an order through its state machine
// (admin). Status is the wire name, e.g. "in progress".
type UpdateOrderStatusRequest struct {
	OrderUuid string `json:"order_uuid" binding:"required"`
	Status    string `json:"status" binding:"required"`
}
