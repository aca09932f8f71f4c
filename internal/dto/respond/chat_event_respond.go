package respond

// ChatEventRespond is the envelope pushed to websocket clients.
type ChatEventRespond struct {
	Event     string `json:"event"`
	Uuid      string `json:"uuid,omitempty"` // message snowflake id, chat.message only
	SendId    string `json:"send_id,omitempty"`
	ReceiveId string `json:"receive_id,omitempty"`
	Type      int8   `json:"type,omitempty"`
	Content   string `json:"content,omitempty"`
	Url       string `json:"url,omitempty"`
	Online    *bool  `json:"online,omitempty"` // presence only
	SendAt    string `json:"send_at,omitempty"`
}
