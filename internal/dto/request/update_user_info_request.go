package request

// UpdateUserInfoRequest carries profile edits. Empty fields are left
// untouched.
type UpdateUserInfoRequest struct {
	Nickname  string `json:"nickname" binding:"omitempty,min=2,max=30"`
	Email     string `json:"email" binding:"omitempty,email"`
	Telephone string `json:"telephone"`
	Bio       string `json:"bio" binding:"omitempty,max=200"`
	Avatar    string `json:"avatar"`
}
