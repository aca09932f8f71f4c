package request

// AddStatusRequest posts a status record.
type AddStatusRequest struct {
	Text string `json:"text" binding:"required,max=300"`
}
