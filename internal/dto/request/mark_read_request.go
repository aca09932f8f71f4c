package request

// MarkReadRequest marks the conversation with PeerId as read.
type MarkReadRequest struct {
	PeerId string `json:"peer_id" binding:"required"`
}
