package request

// GetUserInfoRequest fetches a profile; Uuid defaults to the caller.
type GetUserInfoRequest struct {
	Uuid string `form:"uuid"`
}
