package request

// Websocket event kinds.
const (
	EventChatMessage = "chat.message"
	EventNewStatus   = "status.new"
	EventTyping      = "typing"
	EventPresence    = "presence"
)

// ChatEventRequest is the envelope read off the websocket. Fields beyond
// Event are populated per kind: chat.message uses ReceiveId/Type/Content/
// Url, typing uses ReceiveId only, status.new uses Content.
//
// Uuid and SendAt are server-stamped before a chat.message envelope goes
// onto the kafka topic: the publishing instance persists the row and
// stamps the assigned id so the consuming instances deliver without
// writing a second row. The gateway zeroes both on inbound frames, so
// clients cannot set them.
type ChatEventRequest struct {
	Event     string `json:"event" binding:"required"`
	SendId    string `json:"send_id"`
	ReceiveId string `json:"receive_id"`
	Type      int8   `json:"type"`
	Content   string `json:"content"`
	Url       string `json:"url"`
	Uuid      int64  `json:"uuid,omitempty"`
	SendAt    string `json:"send_at,omitempty"`
}
