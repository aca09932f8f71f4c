package chat

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"hexachats_server/internal/dao/mysql/repository"
	myredis "hexachats_server/internal/dao/redis"
	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/dto/respond"
	"hexachats_server/internal/model"
	"hexachats_server/pkg/constants"
	"hexachats_server/pkg/util/snowflake"
)

// eventRouter holds the routing logic shared by both brokers: event
// dispatch, persistence and presence bookkeeping. The clients map is
// owned by the broker and passed in.
type eventRouter struct {
	clients     *sync.Map
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	contactRepo repository.ContactRepository
	cache       myredis.AsyncCacheService
}

func newEventRouter(clients *sync.Map, repos *repository.Repositories, cache myredis.AsyncCacheService) *eventRouter {
	r := &eventRouter{clients: clients, cache: cache}
	if repos != nil {
		r.messageRepo = repos.Message
		r.userRepo = repos.User
		r.contactRepo = repos.Contact
	}
	return r
}

// handleEvent dispatches one raw envelope read off a websocket or kafka.
func (r *eventRouter) handleEvent(data []byte) {
	var event request.ChatEventRequest
	if err := json.Unmarshal(data, &event); err != nil {
		zap.L().Error("bad chat event", zap.Error(err))
		return
	}
	switch event.Event {
	case request.EventChatMessage:
		r.handleChatMessage(event)
	case request.EventTyping:
		r.handleTyping(event)
	default:
		zap.L().Warn("unknown chat event", zap.String("event", event.Event))
	}
}

// buildChatMessage validates the envelope and assigns the snowflake id
// and timestamp. Returns false for malformed events, which are dropped.
func (r *eventRouter) buildChatMessage(event request.ChatEventRequest) (*model.Message, bool) {
	if event.SendId == "" || event.ReceiveId == "" || event.SendId == event.ReceiveId {
		zap.L().Warn("dropping malformed chat.message",
			zap.String("send", event.SendId), zap.String("receive", event.ReceiveId))
		return nil, false
	}
	if event.Content == "" && event.Url == "" {
		return nil, false
	}
	return &model.Message{
		Uuid:           snowflake.GenerateID(),
		ConversationId: model.ConversationId(event.SendId, event.ReceiveId),
		Type:           event.Type,
		Content:        event.Content,
		Url:            event.Url,
		SendId:         event.SendId,
		ReceiveId:      event.ReceiveId,
		SendAt:         sql.NullTime{Time: time.Now(), Valid: true},
	}, true
}

func (r *eventRouter) store(message *model.Message) {
	if r.messageRepo == nil {
		return
	}
	if err := r.messageRepo.Create(message); err != nil {
		zap.L().Error("store chat message failed", zap.Error(err))
	}
}

// stampAndStore persists a chat.message on the publishing side and stamps
// the envelope with the assigned id and timestamp, so every consuming
// instance delivers the same frame without writing a second row. Other
// event kinds pass through untouched.
func (r *eventRouter) stampAndStore(data []byte) []byte {
	var event request.ChatEventRequest
	if err := json.Unmarshal(data, &event); err != nil {
		return data
	}
	if event.Event != request.EventChatMessage || event.Uuid != 0 {
		return data
	}
	message, ok := r.buildChatMessage(event)
	if !ok {
		return data
	}
	r.store(message)
	event.Uuid = message.Uuid
	event.SendAt = message.SendAt.Time.Format(constants.TIME_FORMAT)
	stamped, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("stamp chat event failed", zap.Error(err))
		return data
	}
	return stamped
}

// handleChatMessage persists the message once under the canonical
// conversation id, then delivers to the recipient and echoes to the
// sender so their own view updates. Envelopes already stamped by the
// publishing instance skip persistence and go straight to delivery.
func (r *eventRouter) handleChatMessage(event request.ChatEventRequest) {
	uuid := event.Uuid
	sendAt := event.SendAt
	if uuid == 0 {
		message, ok := r.buildChatMessage(event)
		if !ok {
			return
		}
		r.store(message)
		uuid = message.Uuid
		sendAt = message.SendAt.Time.Format(constants.TIME_FORMAT)
	} else if event.SendId == "" || event.ReceiveId == "" || event.SendId == event.ReceiveId {
		return
	}

	rsp := respond.ChatEventRespond{
		Event:     request.EventChatMessage,
		Uuid:      strconv.FormatInt(uuid, 10),
		SendId:    event.SendId,
		ReceiveId: event.ReceiveId,
		Type:      event.Type,
		Content:   event.Content,
		Url:       event.Url,
		SendAt:    sendAt,
	}
	r.deliver(event.ReceiveId, rsp, uuid)
	r.deliver(event.SendId, rsp, 0) // echo, no delivery status update
}

// handleTyping forwards the indicator to the recipient only. Nothing is
// stored.
func (r *eventRouter) handleTyping(event request.ChatEventRequest) {
	if event.SendId == "" || event.ReceiveId == "" {
		return
	}
	r.deliver(event.ReceiveId, respond.ChatEventRespond{
		Event:     request.EventTyping,
		SendId:    event.SendId,
		ReceiveId: event.ReceiveId,
	}, 0)
}

// deliver pushes one event to a client if connected. Returns false when
// the client is offline or its buffer is full.
func (r *eventRouter) deliver(userId string, rsp respond.ChatEventRespond, messageUuid int64) bool {
	value, ok := r.clients.Load(userId)
	if !ok {
		return false
	}
	client := value.(*UserConn)
	data, err := json.Marshal(rsp)
	if err != nil {
		zap.L().Error("marshal chat event failed", zap.Error(err))
		return false
	}
	select {
	case client.SendBack <- &MessageBack{Message: data, Uuid: messageUuid}:
		return true
	default:
		zap.L().Warn("client send buffer full, dropping event", zap.String("user", userId))
		return false
	}
}

// login registers the connection and flips presence on.
func (r *eventRouter) login(client *UserConn) {
	r.clients.Store(client.Uuid, client)
	zap.L().Info("client connected", zap.String("user", client.Uuid))
	r.setPresence(client.Uuid, true)
}

// logout removes the connection and flips presence off.
func (r *eventRouter) logout(client *UserConn) {
	r.clients.Delete(client.Uuid)
	zap.L().Info("client disconnected", zap.String("user", client.Uuid))
	r.setPresence(client.Uuid, false)
}

// setPresence writes the redis presence key, records the transition on
// the user row, and pushes a presence event to everyone who keeps this
// user as a contact. All of it is best effort.
func (r *eventRouter) setPresence(uuid string, online bool) {
	now := time.Now()
	if r.cache != nil {
		ctx := context.Background()
		var err error
		if online {
			err = r.cache.Set(ctx, constants.PRESENCE_KEY_PREFIX+uuid, "1", constants.PRESENCE_TTL)
		} else {
			err = r.cache.Delete(ctx, constants.PRESENCE_KEY_PREFIX+uuid)
		}
		if err != nil {
			zap.L().Error("update presence key failed", zap.Error(err))
		}
	}
	if r.userRepo != nil {
		repo := r.userRepo
		update := func() {
			if err := repo.UpdateOnlineState(uuid, online, now); err != nil {
				zap.L().Error("record online state failed", zap.Error(err))
			}
		}
		if r.cache != nil {
			r.cache.SubmitTask(update)
		} else {
			update()
		}
	}
	r.broadcastPresence(uuid, online)
}

// refreshPresence re-arms the presence ttl for every connected client
// until done closes. The keys stay alive well inside the ttl, so only a
// node that died without logging its clients out lets them lapse.
func (r *eventRouter) refreshPresence(done <-chan struct{}) {
	if r.cache == nil {
		return
	}
	ticker := time.NewTicker(constants.PRESENCE_TTL / 2)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			r.clients.Range(func(key, _ interface{}) bool {
				uuid := key.(string)
				err := r.cache.Set(context.Background(), constants.PRESENCE_KEY_PREFIX+uuid, "1", constants.PRESENCE_TTL)
				if err != nil {
					zap.L().Warn("refresh presence failed", zap.String("user", uuid), zap.Error(err))
				}
				return true
			})
		}
	}
}

func (r *eventRouter) broadcastPresence(uuid string, online bool) {
	if r.contactRepo == nil {
		return
	}
	watchers, err := r.contactRepo.FindWatchers(uuid)
	if err != nil {
		zap.L().Warn("presence fanout lookup failed", zap.Error(err))
		return
	}
	flag := online
	event := respond.ChatEventRespond{
		Event:  request.EventPresence,
		SendId: uuid,
		Online: &flag,
	}
	for _, w := range watchers {
		r.deliver(w, event, 0)
	}
}
