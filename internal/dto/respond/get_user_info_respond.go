package respond

// GetUserInfoRespond is the profile view, also returned by whoami.
type GetUserInfoRespond struct {
	Uuid          string `json:"uuid"`
	Nickname      string `json:"nickname"`
	Email         string `json:"email"`
	Telephone     string `json:"telephone"`
	Avatar        string `json:"avatar"`
	Bio           string `json:"bio"`
	IsAdmin       int8   `json:"is_admin"`
	Status        int8   `json:"status"`
	LastOnlineAt  string `json:"last_online_at,omitempty"`
	LastOfflineAt string `json:"last_offline_at,omitempty"`
	CreatedAt     string `json:"created_at"`
}
