package request

// GetServiceListRequest lists the catalog, optionally one platform.
type GetServiceListRequest struct {
	Platform string `form:"platform"`
}
