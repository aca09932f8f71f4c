package request

// AbleUsersRequest is the admin batch enable/disable payload.
type AbleUsersRequest struct {
	UuidList []string `json:"uuid_list" binding:"required,min=1"`
}
