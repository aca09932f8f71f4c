package contact

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"hexachats_server/internal/dao/mysql/repository"
	myredis "hexachats_server/internal/dao/redis"
	"hexachats_server/internal/model"
	"hexachats_server/pkg/constants"
	"hexachats_server/pkg/errorx"
)

type fakeUserRepo struct {
	repository.UserRepository
	users map[string]*model.UserInfo
}

func (f *fakeUserRepo) FindByUuid(uuid string) (*model.UserInfo, error) {
	if u, ok := f.users[uuid]; ok {
		return u, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "record not found")
}

func (f *fakeUserRepo) FindByUuids(uuids []string) ([]model.UserInfo, error) {
	var out []model.UserInfo
	for _, id := range uuids {
		if u, ok := f.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakeContactRepo struct {
	repository.ContactRepository
	contacts []model.Contact
	deleted  bool
}

func (f *fakeContactRepo) FindByUserIdAndContactId(userId, contactId string) (*model.Contact, error) {
	for i := range f.contacts {
		if f.contacts[i].UserId == userId && f.contacts[i].ContactId == contactId {
			return &f.contacts[i], nil
		}
	}
	return nil, errorx.New(errorx.CodeNotFound, "record not found")
}

func (f *fakeContactRepo) FindByUserId(userId string) ([]model.Contact, error) {
	var out []model.Contact
	for _, ct := range f.contacts {
		if ct.UserId == userId {
			out = append(out, ct)
		}
	}
	return out, nil
}

func (f *fakeContactRepo) Create(contact *model.Contact) error {
	f.contacts = append(f.contacts, *contact)
	return nil
}

func (f *fakeContactRepo) SoftDelete(userId, contactId string) error {
	f.deleted = true
	return nil
}

func newTestService() (*contactService, *fakeContactRepo) {
	users := &fakeUserRepo{users: map[string]*model.UserInfo{
		"U1": {Uuid: "U1", Nickname: "alice", Bio: "hey"},
		"U2": {Uuid: "U2", Nickname: "bob"},
	}}
	contacts := &fakeContactRepo{}
	repos := &repository.Repositories{User: users, Contact: contacts}
	return NewContactService(repos, nil), contacts
}

func TestAddContact(t *testing.T) {
	svc, repo := newTestService()

	if err := svc.AddContact("U1", "U2"); err != nil {
		t.Fatalf("AddContact: %v", err)
	}
	if len(repo.contacts) != 1 {
		t.Fatalf("contacts = %d, want 1", len(repo.contacts))
	}

	if err := svc.AddContact("U1", "U2"); errorx.GetCode(err) != errorx.CodeConflict {
		t.Fatalf("duplicate add: %v", err)
	}
	if err := svc.AddContact("U1", "U1"); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("self add: %v", err)
	}
	if err := svc.AddContact("U1", "Umissing"); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("missing contact: %v", err)
	}
}

func TestAddContactIsAsymmetric(t *testing.T) {
	svc, repo := newTestService()

	if err := svc.AddContact("U1", "U2"); err != nil {
		t.Fatalf("AddContact: %v", err)
	}
	// Only U1's direction exists; U2 may still add U1.
	if err := svc.AddContact("U2", "U1"); err != nil {
		t.Fatalf("reverse AddContact: %v", err)
	}
	if len(repo.contacts) != 2 {
		t.Fatalf("contacts = %d, want 2", len(repo.contacts))
	}
}

func TestGetContactList(t *testing.T) {
	svc, repo := newTestService()
	repo.contacts = []model.Contact{{
		Model:     gorm.Model{CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		UserId:    "U1",
		ContactId: "U2",
	}}

	list, err := svc.GetContactList("U1")
	if err != nil {
		t.Fatalf("GetContactList: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	if list[0].ContactId != "U2" || list[0].Nickname != "bob" {
		t.Fatalf("entry = %+v", list[0])
	}
	// No cache wired, so presence falls back to offline.
	if list[0].Online {
		t.Fatal("online without a presence source")
	}
	if list[0].AddedAt != "2026-03-01 10:00:00" {
		t.Fatalf("added_at = %q", list[0].AddedAt)
	}
}

type fakeCache struct {
	myredis.CacheService
	values map[string]string
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func TestGetContactListPresence(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*model.UserInfo{
		"U2": {Uuid: "U2", Nickname: "bob"},
		"U3": {Uuid: "U3", Nickname: "carol"},
	}}
	contacts := &fakeContactRepo{contacts: []model.Contact{
		{UserId: "U1", ContactId: "U2"},
		{UserId: "U1", ContactId: "U3"},
	}}
	// Only U2 has a live presence key; U3's has lapsed.
	cache := &fakeCache{values: map[string]string{
		constants.PRESENCE_KEY_PREFIX + "U2": "1",
	}}
	svc := NewContactService(&repository.Repositories{User: users, Contact: contacts}, cache)

	list, err := svc.GetContactList("U1")
	if err != nil {
		t.Fatalf("GetContactList: %v", err)
	}
	online := map[string]bool{}
	for _, entry := range list {
		online[entry.ContactId] = entry.Online
	}
	if !online["U2"] || online["U3"] {
		t.Fatalf("online = %v", online)
	}
}

func TestGetContactListEmpty(t *testing.T) {
	svc, _ := newTestService()

	list, err := svc.GetContactList("U2")
	if err != nil {
		t.Fatalf("GetContactList: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("len = %d, want 0", len(list))
	}
}

func TestRemoveContact(t *testing.T) {
	svc, repo := newTestService()
	repo.contacts = []model.Contact{{UserId: "U1", ContactId: "U2"}}

	if err := svc.RemoveContact("U1", "U2"); err != nil {
		t.Fatalf("RemoveContact: %v", err)
	}
	if !repo.deleted {
		t.Fatal("SoftDelete not called")
	}
	if err := svc.RemoveContact("U1", "U9"); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("missing entry: %v", err)
	}
}
