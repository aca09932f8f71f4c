package respond

// MessageRespond is one conversation message. Uuid is stringified to
// survive JavaScript number precision.
type MessageRespond struct {
	Uuid      string `json:"uuid"`
	SendId    string `json:"send_id"`
	ReceiveId string `json:"receive_id"`
	Type      int8   `json:"type"`
	Content   string `json:"content"`
	Url       string `json:"url,omitempty"`
	ReadFlag  int8   `json:"read_flag"`
	SendAt    string `json:"send_at"`
}
