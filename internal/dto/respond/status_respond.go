package respond

// StatusRespond is one active status record.
type StatusRespond struct {
	Id        uint   `json:"id"`
	UserId    string `json:"user_id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
	ExpiresAt string `json:"expires_at"`
}
