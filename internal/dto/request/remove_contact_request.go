package request

// RemoveContactRequest removes a user from the caller's contact list.
type RemoveContactRequest struct {
	ContactId string `json:"contact_id" binding:"required"`
}
