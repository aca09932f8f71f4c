package request

// GetStatusListRequest lists a user's active statuses; UserId defaults
// to the caller.
type GetStatusListRequest struct {
	UserId string `form:"user_id"`
}
