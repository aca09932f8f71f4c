package request

// SendMessageRequest posts a chat message over HTTP. The same shape is
// accepted on the websocket as a chat.message event.
type SendMessageRequest struct {
	ReceiveId string `json:"receive_id" binding:"required"`
	Type      int8   `json:"type" binding:"gte=0,lte=2"`
	Content   string `json:"content"`
	Url       string `json:"url"`
}
