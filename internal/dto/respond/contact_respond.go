package respond

// ContactRespond is one contact-list entry with a snapshot of the
// contact's public profile and current presence.
type ContactRespond struct {
	ContactId string `json:"contact_id"`
	Nickname  string `json:"nickname"`
	Avatar    string `json:"avatar"`
	Bio       string `json:"bio"`
	Online    bool   `json:"online"`
	AddedAt   string `json:"added_at"`
}
