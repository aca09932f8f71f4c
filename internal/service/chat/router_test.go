package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"hexachats_server/internal/dao/mysql/repository"
	myredis "hexachats_server/internal/dao/redis"
	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/dto/respond"
	"hexachats_server/internal/model"
	"hexachats_server/pkg/constants"
)

type fakeMessageRepo struct {
	repository.MessageRepository
	stored []model.Message
}

func (f *fakeMessageRepo) Create(message *model.Message) error {
	f.stored = append(f.stored, *message)
	return nil
}

func connected(clients *sync.Map, uuid string, buffer int) *UserConn {
	client := &UserConn{
		Uuid:     uuid,
		SendBack: make(chan *MessageBack, buffer),
	}
	clients.Store(uuid, client)
	return client
}

func drainEvent(t *testing.T, client *UserConn) (respond.ChatEventRespond, int64) {
	t.Helper()
	select {
	case back := <-client.SendBack:
		var event respond.ChatEventRespond
		if err := json.Unmarshal(back.Message, &event); err != nil {
			t.Fatalf("unmarshal frame: %v", err)
		}
		return event, back.Uuid
	default:
		t.Fatal("no frame queued")
		return respond.ChatEventRespond{}, 0
	}
}

func TestHandleChatMessagePersistsAndDelivers(t *testing.T) {
	clients := &sync.Map{}
	messages := &fakeMessageRepo{}
	router := newEventRouter(clients, &repository.Repositories{Message: messages}, nil)

	receiver := connected(clients, "U2", constants.CHANNEL_SIZE)
	sender := connected(clients, "U1", constants.CHANNEL_SIZE)

	raw, _ := json.Marshal(request.ChatEventRequest{
		Event:     request.EventChatMessage,
		SendId:    "U1",
		ReceiveId: "U2",
		Content:   "hello",
	})
	router.handleEvent(raw)

	if len(messages.stored) != 1 {
		t.Fatalf("stored = %d, want exactly one row", len(messages.stored))
	}
	if messages.stored[0].ConversationId != model.ConversationId("U1", "U2") {
		t.Fatalf("conversation id = %q", messages.stored[0].ConversationId)
	}

	event, uuid := drainEvent(t, receiver)
	if event.Event != request.EventChatMessage || event.Content != "hello" {
		t.Fatalf("receiver frame = %+v", event)
	}
	if uuid == 0 {
		t.Fatal("receiver frame missing message uuid for delivery tracking")
	}

	echo, echoUuid := drainEvent(t, sender)
	if echo.Content != "hello" {
		t.Fatalf("sender echo = %+v", echo)
	}
	if echoUuid != 0 {
		t.Fatal("sender echo must not carry a delivery uuid")
	}
}

func TestStampedEnvelopeDeliversWithoutSecondRow(t *testing.T) {
	pubMessages := &fakeMessageRepo{}
	publisher := newEventRouter(&sync.Map{}, &repository.Repositories{Message: pubMessages}, nil)

	raw, _ := json.Marshal(request.ChatEventRequest{
		Event:     request.EventChatMessage,
		SendId:    "U1",
		ReceiveId: "U2",
		Content:   "hello",
	})
	stamped := publisher.stampAndStore(raw)

	if len(pubMessages.stored) != 1 {
		t.Fatalf("publisher stored = %d, want 1", len(pubMessages.stored))
	}
	var envelope request.ChatEventRequest
	if err := json.Unmarshal(stamped, &envelope); err != nil {
		t.Fatalf("unmarshal stamped envelope: %v", err)
	}
	if envelope.Uuid != pubMessages.stored[0].Uuid {
		t.Fatalf("envelope uuid = %d, stored row = %d", envelope.Uuid, pubMessages.stored[0].Uuid)
	}
	if envelope.SendAt == "" {
		t.Fatal("stamped envelope missing send_at")
	}

	// Another instance consumes the same envelope: the recipient
	// connected there gets the frame and no second row is written.
	otherClients := &sync.Map{}
	otherMessages := &fakeMessageRepo{}
	other := newEventRouter(otherClients, &repository.Repositories{Message: otherMessages}, nil)
	receiver := connected(otherClients, "U2", constants.CHANNEL_SIZE)

	other.handleEvent(stamped)

	if len(otherMessages.stored) != 0 {
		t.Fatalf("consumer stored = %d, want 0", len(otherMessages.stored))
	}
	event, uuid := drainEvent(t, receiver)
	if event.Event != request.EventChatMessage || event.Content != "hello" {
		t.Fatalf("frame = %+v", event)
	}
	if uuid != pubMessages.stored[0].Uuid {
		t.Fatalf("delivery uuid = %d, want %d", uuid, pubMessages.stored[0].Uuid)
	}
}

func TestStampAndStorePassesOtherEventsThrough(t *testing.T) {
	messages := &fakeMessageRepo{}
	router := newEventRouter(&sync.Map{}, &repository.Repositories{Message: messages}, nil)

	raw, _ := json.Marshal(request.ChatEventRequest{
		Event:     request.EventTyping,
		SendId:    "U1",
		ReceiveId: "U2",
	})
	if out := router.stampAndStore(raw); !bytes.Equal(out, raw) {
		t.Fatalf("typing envelope rewritten: %s", out)
	}
	if len(messages.stored) != 0 {
		t.Fatal("typing indicator was persisted")
	}
}

func TestHandleChatMessageDropsMalformed(t *testing.T) {
	clients := &sync.Map{}
	messages := &fakeMessageRepo{}
	router := newEventRouter(clients, &repository.Repositories{Message: messages}, nil)

	for _, event := range []request.ChatEventRequest{
		{Event: request.EventChatMessage, SendId: "U1", ReceiveId: "U1", Content: "self"},
		{Event: request.EventChatMessage, SendId: "", ReceiveId: "U2", Content: "anon"},
		{Event: request.EventChatMessage, SendId: "U1", ReceiveId: "U2"},
	} {
		raw, _ := json.Marshal(event)
		router.handleEvent(raw)
	}
	if len(messages.stored) != 0 {
		t.Fatalf("stored = %d, want 0", len(messages.stored))
	}
}

func TestHandleTypingForwardsWithoutStoring(t *testing.T) {
	clients := &sync.Map{}
	messages := &fakeMessageRepo{}
	router := newEventRouter(clients, &repository.Repositories{Message: messages}, nil)
	receiver := connected(clients, "U2", constants.CHANNEL_SIZE)

	raw, _ := json.Marshal(request.ChatEventRequest{
		Event:     request.EventTyping,
		SendId:    "U1",
		ReceiveId: "U2",
	})
	router.handleEvent(raw)

	event, _ := drainEvent(t, receiver)
	if event.Event != request.EventTyping || event.SendId != "U1" {
		t.Fatalf("frame = %+v", event)
	}
	if len(messages.stored) != 0 {
		t.Fatal("typing indicator was persisted")
	}
}

func TestDeliverOfflineAndFullBuffer(t *testing.T) {
	clients := &sync.Map{}
	router := newEventRouter(clients, nil, nil)

	if router.deliver("Uoffline", respond.ChatEventRespond{Event: request.EventTyping}, 0) {
		t.Fatal("delivered to a client that never connected")
	}

	// Buffer of one, already full: the frame must be dropped, not block.
	client := connected(clients, "U1", 1)
	client.SendBack <- &MessageBack{}
	if router.deliver("U1", respond.ChatEventRespond{Event: request.EventTyping}, 0) {
		t.Fatal("delivered into a full buffer")
	}
}

func TestLoginLogoutMaintainClients(t *testing.T) {
	clients := &sync.Map{}
	router := newEventRouter(clients, nil, nil)

	client := &UserConn{Uuid: "U1", SendBack: make(chan *MessageBack, 1)}
	router.login(client)
	if _, ok := clients.Load("U1"); !ok {
		t.Fatal("client not registered")
	}
	router.logout(client)
	if _, ok := clients.Load("U1"); ok {
		t.Fatal("client still registered after logout")
	}
}

type fakeCache struct {
	myredis.AsyncCacheService
	set  map[string]time.Duration
	dels []string
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.set[key] = ttl
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.dels = append(f.dels, key)
	return nil
}

func (f *fakeCache) SubmitTask(action func()) {
	action()
}

func TestLoginLogoutMaintainPresenceKey(t *testing.T) {
	clients := &sync.Map{}
	cache := &fakeCache{set: map[string]time.Duration{}}
	router := newEventRouter(clients, nil, cache)

	client := &UserConn{Uuid: "U1", SendBack: make(chan *MessageBack, 1)}
	router.login(client)
	if ttl := cache.set[constants.PRESENCE_KEY_PREFIX+"U1"]; ttl != constants.PRESENCE_TTL {
		t.Fatalf("presence ttl = %v, want %v", ttl, constants.PRESENCE_TTL)
	}

	router.logout(client)
	if len(cache.dels) != 1 || cache.dels[0] != constants.PRESENCE_KEY_PREFIX+"U1" {
		t.Fatalf("deleted keys = %v", cache.dels)
	}
}
