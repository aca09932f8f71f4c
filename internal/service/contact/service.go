// Package contact implements the asymmetric contact lists.
package contact

import (
	"context"

	"go.uber.org/zap"

	"hexachats_server/internal/dao/mysql/repository"
	myredis "hexachats_server/internal/dao/redis"
	"hexachats_server/internal/dto/respond"
	"hexachats_server/internal/model"
	"hexachats_server/pkg/constants"
	"hexachats_server/pkg/errorx"
)

type contactService struct {
	repos *repository.Repositories
	cache myredis.CacheService
}

// NewContactService wires the repositories and an optional cache used
// only for presence lookups.
func NewContactService(repos *repository.Repositories, cache myredis.CacheService) *contactService {
	return &contactService{repos: repos, cache: cache}
}

// AddContact puts contactId on userId's list. Adding yourself, a
// missing account or a duplicate entry is rejected.
func (c *contactService) AddContact(userId, contactId string) error {
	if userId == contactId {
		return errorx.New(errorx.CodeInvalidParam, "cannot add yourself")
	}
	if _, err := c.repos.User.FindByUuid(contactId); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "user not found")
		}
		return err
	}
	if _, err := c.repos.Contact.FindByUserIdAndContactId(userId, contactId); err == nil {
		return errorx.New(errorx.CodeConflict, "already in contact list")
	} else if !errorx.IsNotFound(err) {
		return err
	}
	return c.repos.Contact.Create(&model.Contact{
		UserId:    userId,
		ContactId: contactId,
	})
}

// GetContactList returns userId's contacts with profile snapshots and
// presence. Presence degrades to offline when the cache is down.
func (c *contactService) GetContactList(userId string) ([]respond.ContactRespond, error) {
	contacts, err := c.repos.Contact.FindByUserId(userId)
	if err != nil {
		return nil, err
	}
	if len(contacts) == 0 {
		return []respond.ContactRespond{}, nil
	}

	uuids := make([]string, 0, len(contacts))
	addedAt := make(map[string]string, len(contacts))
	for _, ct := range contacts {
		uuids = append(uuids, ct.ContactId)
		addedAt[ct.ContactId] = ct.CreatedAt.Format(constants.TIME_FORMAT)
	}
	users, err := c.repos.User.FindByUuids(uuids)
	if err != nil {
		return nil, err
	}

	list := make([]respond.ContactRespond, 0, len(users))
	for _, usr := range users {
		list = append(list, respond.ContactRespond{
			ContactId: usr.Uuid,
			Nickname:  usr.Nickname,
			Avatar:    usr.Avatar,
			Bio:       usr.Bio,
			Online:    c.isOnline(usr.Uuid),
			AddedAt:   addedAt[usr.Uuid],
		})
	}
	return list, nil
}

// RemoveContact drops contactId from userId's list only.
func (c *contactService) RemoveContact(userId, contactId string) error {
	if _, err := c.repos.Contact.FindByUserIdAndContactId(userId, contactId); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "not in contact list")
		}
		return err
	}
	return c.repos.Contact.SoftDelete(userId, contactId)
}

// isOnline checks the hub-maintained presence key. The key expires on
// its own when the node holding the connection dies.
func (c *contactService) isOnline(uuid string) bool {
	if c.cache == nil {
		return false
	}
	value, err := c.cache.Get(context.Background(), constants.PRESENCE_KEY_PREFIX+uuid)
	if err != nil {
		zap.L().Warn("read presence key failed", zap.String("user", uuid), zap.Error(err))
		return false
	}
	return value != ""
}
