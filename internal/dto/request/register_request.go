package request

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Nickname  string `json:"nickname" binding:"required,min=2,max=30"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Telephone string `json:"telephone"`
}
