package request

// AddContactRequest adds a user to the caller's contact list.
type AddContactRequest struct {
	ContactId string `json:"contact_id" binding:"required"`
}
