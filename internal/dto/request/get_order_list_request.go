package request

// GetOrderListRequest pages through all orders (admin).
type GetOrderListRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}
