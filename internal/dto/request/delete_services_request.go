package request

// DeleteServicesRequest removes catalog entries (admin).
type DeleteServicesRequest struct {
	UuidList []string `json:"uuid_list" binding:"required,min=1"`
}
