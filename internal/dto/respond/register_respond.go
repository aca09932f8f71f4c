package respond

// RegisterRespond echoes the created account.
type RegisterRespond struct {
	Uuid      string `json:"uuid"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Avatar    string `json:"avatar"`
	Bio       string `json:"bio"`
	IsAdmin   int8   `json:"is_admin"`
	Status    int8   `json:"status"`
	CreatedAt string `json:"created_at"`
}
