package handler

import (
	"github.com/gin-gonic/gin"

	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/infrastructure/middleware"
	"hexachats_server/internal/service"
)

// ContactHandler serves the contact list endpoints.
type ContactHandler struct {
	contactSvc service.ContactService
}

func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

// AddContact handles POST /contact/addContact.
func (h *ContactHandler) AddContact(c *gin.Context) {
	var req request.AddContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	userId := c.GetString(middleware.ContextUserKey)
	if err := h.contactSvc.AddContact(userId, req.ContactId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetContactList handles GET /contact/getContactList.
func (h *ContactHandler) GetContactList(c *gin.Context) {
	userId := c.GetString(middleware.ContextUserKey)
	data, err := h.contactSvc.GetContactList(userId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RemoveContact handles POST /contact/removeContact.
func (h *ContactHandler) RemoveContact(c *gin.Context) {
	var req request.RemoveContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	userId := c.GetString(middleware.ContextUserKey)
	if err := h.contactSvc.RemoveContact(userId, req.ContactId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
