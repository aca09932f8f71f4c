// Package repository implements the data access layer on gorm.
// Interfaces are declared here; each entity has its own implementation
// file. Service code depends only on the interfaces.
package repository

import (
	"time"

	"hexachats_server/internal/model"
)

// UserRepository handles account rows.
type UserRepository interface {
	FindByUuid(uuid string) (*model.UserInfo, error)
	FindByEmail(email string) (*model.UserInfo, error)
	FindByNickname(nickname string) (*model.UserInfo, error)
	FindByUuids(uuids []string) ([]model.UserInfo, error)
	FindAllExcept(excludeUuid string) ([]model.UserInfo, error)
	Create(user *model.UserInfo) error
	Update(user *model.UserInfo) error
	UpdateStatusByUuids(uuids []string, status int8) error
	UpdateOnlineState(uuid string, online bool, at time.Time) error
}

// ContactRepository handles the asymmetric contact lists.
type ContactRepository interface {
	FindByUserIdAndContactId(userId, contactId string) (*model.Contact, error)
	FindByUserId(userId string) ([]model.Contact, error)
	// FindWatchers returns the uuids of users who keep contactId on
	// their list, for status fanout.
	FindWatchers(contactId string) ([]string, error)
	Create(contact *model.Contact) error
	SoftDelete(userId, contactId string) error
}

// MessageRepository handles chat messages.
type MessageRepository interface {
	// FindByConversationId returns up to limit of the newest messages,
	// newest first.
	FindByConversationId(conversationId string, limit int) ([]model.Message, error)
	Create(message *model.Message) error
	MarkRead(conversationId, readerId string) error
	UpdateStatus(uuid int64, status int8) error
}

// StatusRepository handles status records.
type StatusRepository interface {
	Create(record *model.StatusRecord) error
	FindActiveByUserId(userId string, now time.Time) ([]model.StatusRecord, error)
}

// CallRepository handles call logs.
type CallRepository interface {
	Create(record *model.CallRecord) error
	FindByParticipant(userId string) ([]model.CallRecord, error)
}

// CatalogRepository handles the service catalog.
type CatalogRepository interface {
	FindByUuid(uuid string) (*model.CatalogService, error)
	FindByPlatform(platform string, activeOnly bool) ([]model.CatalogService, error)
	FindAll(activeOnly bool) ([]model.CatalogService, error)
	Create(service *model.CatalogService) error
	SetActiveByUuids(uuids []string, active int8) error
	SoftDeleteByUuids(uuids []string) error
}

// OrderRepository handles placed orders.
type OrderRepository interface {
	FindByUuid(uuid string) (*model.Order, error)
	FindByUserId(userId string) ([]model.Order, error)
	FindAll(page, pageSize int) ([]model.Order, int64, error)
	Create(order *model.Order) error
	UpdateStatus(uuid string, status int8) error
}
