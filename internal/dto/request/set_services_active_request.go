package request

// SetServicesActiveRequest toggles catalog entries (admin).
// Active is a pointer so an explicit false survives binding.
type SetServicesActiveRequest struct {
	UuidList []string `json:"uuid_list" binding:"required,min=1"`
	Active   *bool    `json:"active" binding:"required"`
}
