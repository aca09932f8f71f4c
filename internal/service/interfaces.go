// Package service defines the business-layer interfaces the handlers
// depend on, plus the aggregate wiring.
package service

import (
	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/dto/respond"
)

// UserService covers accounts, auth and the admin user listing.
type UserService interface {
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	RefreshToken(refreshToken string) (*respond.RefreshTokenRespond, error)
	Logout(userId string) error
	GetUserInfo(uuid string) (*respond.GetUserInfoRespond, error)
	UpdateUserInfo(userId string, req request.UpdateUserInfoRequest) error
	UpdateAvatar(userId, avatarPath string) error
	GetUserInfoList(ownerId string) ([]respond.GetUserListRespond, error)
	AbleUsers(uuidList []string) error
	DisableUsers(uuidList []string) error
	// IsAdmin implements the admin gate: is_admin flag or configured
	// administrator email.
	IsAdmin(uuid string) (bool, error)
}

// ContactService covers the asymmetric contact lists.
type ContactService interface {
	AddContact(userId, contactId string) error
	GetContactList(userId string) ([]respond.ContactRespond, error)
	RemoveContact(userId, contactId string) error
}

// MessageService covers HTTP-side chat: send, history, mark-read.
type MessageService interface {
	SendMessage(sendId string, req request.SendMessageRequest) (*respond.MessageRespond, error)
	GetMessageList(userId, peerId string, limit int) ([]respond.MessageRespond, error)
	MarkRead(userId, peerId string) error
}

// StatusService covers status records.
type StatusService interface {
	AddStatus(userId, text string) (*respond.StatusRespond, error)
	GetStatusList(userId string) ([]respond.StatusRespond, error)
}

// CallService covers call logs.
type CallService interface {
	AddCallRecord(callerId string, req request.AddCallRecordRequest) (*respond.CallRecordRespond, error)
	GetCallRecordList(userId string) ([]respond.CallRecordRespond, error)
}

// CatalogService covers the SMM service catalog.
type CatalogService interface {
	GetServiceList(platform string, includeInactive bool) ([]respond.ServiceRespond, error)
	AddService(req request.AddServiceRequest) (*respond.ServiceRespond, error)
	DeleteServices(uuidList []string) error
	SetServicesActive(uuidList []string, active bool) error
}

// OrderService covers order placement and the admin order workflow.
type OrderService interface {
	PlaceOrder(userId string, req request.PlaceOrderRequest, proof *request.ProofUpload) (*respond.OrderRespond, error)
	GetMyOrders(userId string) ([]respond.OrderRespond, error)
	GetOrderList(page, pageSize int) (*respond.OrderListWrapper, error)
	UpdateOrderStatus(orderUuid, statusName string) error
}

// Pusher forwards an event to a connected websocket client. Implemented
// by the chat hub; returns false when the recipient is offline.
type Pusher interface {
	PushToUser(userId string, event respond.ChatEventRespond) bool
}
