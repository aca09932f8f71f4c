package request

// GetMessageListRequest loads the conversation with PeerId.
type GetMessageListRequest struct {
	PeerId string `form:"peer_id" binding:"required"`
	Limit  int    `form:"limit"`
}
