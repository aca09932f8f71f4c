// Package message implements HTTP-side chat: send, history, mark-read.
package message

import (
	"database/sql"
	"strconv"
	"time"

	"go.uber.org/zap"

	"hexachats_server/internal/dao/mysql/repository"
	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/dto/respond"
	"hexachats_server/internal/model"
	"hexachats_server/pkg/constants"
	"hexachats_server/pkg/errorx"
	"hexachats_server/pkg/util/snowflake"
)

// Pusher matches service.Pusher; declared locally so the package has no
// import back into the parent.
type Pusher interface {
	PushToUser(userId string, event respond.ChatEventRespond) bool
}

type messageService struct {
	repos  *repository.Repositories
	pusher Pusher
}

// NewMessageService wires the repositories. The pusher is attached later
// once the websocket hub exists.
func NewMessageService(repos *repository.Repositories) *messageService {
	return &messageService{repos: repos}
}

// SetPusher attaches the realtime hub. Safe to leave unset; messages are
// then stored without live delivery.
func (m *messageService) SetPusher(p Pusher) {
	m.pusher = p
}

// SendMessage persists the message under the canonical conversation id
// and pushes it to the recipient when online.
func (m *messageService) SendMessage(sendId string, req request.SendMessageRequest) (*respond.MessageRespond, error) {
	if sendId == req.ReceiveId {
		return nil, errorx.New(errorx.CodeInvalidParam, "cannot message yourself")
	}
	if req.Content == "" && req.Url == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "empty message")
	}
	receiver, err := m.repos.User.FindByUuid(req.ReceiveId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "recipient not found")
		}
		return nil, err
	}
	if receiver.Status == constants.USER_STATUS_DISABLE {
		return nil, errorx.New(errorx.CodeForbidden, "recipient account disabled")
	}

	now := time.Now()
	msg := &model.Message{
		Uuid:           snowflake.GenerateID(),
		ConversationId: model.ConversationId(sendId, req.ReceiveId),
		Type:           req.Type,
		Content:        req.Content,
		Url:            req.Url,
		SendId:         sendId,
		ReceiveId:      req.ReceiveId,
		SendAt:         sql.NullTime{Time: now, Valid: true},
	}
	if err := m.repos.Message.Create(msg); err != nil {
		return nil, err
	}

	rsp := toMessageRespond(msg)
	if m.pusher != nil {
		delivered := m.pusher.PushToUser(req.ReceiveId, respond.ChatEventRespond{
			Event:     request.EventChatMessage,
			Uuid:      rsp.Uuid,
			SendId:    msg.SendId,
			ReceiveId: msg.ReceiveId,
			Type:      msg.Type,
			Content:   msg.Content,
			Url:       msg.Url,
			SendAt:    rsp.SendAt,
		})
		if delivered {
			if err := m.repos.Message.UpdateStatus(msg.Uuid, 1); err != nil {
				zap.L().Error("mark message delivered failed", zap.Int64("uuid", msg.Uuid), zap.Error(err))
			}
		}
	}
	return rsp, nil
}

// GetMessageList returns up to limit recent messages between userId and
// peerId, oldest first.
func (m *messageService) GetMessageList(userId, peerId string, limit int) ([]respond.MessageRespond, error) {
	if peerId == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "missing peer id")
	}
	if limit <= 0 || limit > constants.MESSAGE_LIST_LIMIT {
		limit = constants.MESSAGE_LIST_LIMIT
	}
	messages, err := m.repos.Message.FindByConversationId(model.ConversationId(userId, peerId), limit)
	if err != nil {
		return nil, err
	}
	// The repository hands back the newest rows first; flip them to
	// chronological order for the client.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	list := make([]respond.MessageRespond, 0, len(messages))
	for i := range messages {
		list = append(list, *toMessageRespond(&messages[i]))
	}
	return list, nil
}

// MarkRead flags every message from peerId to userId as read.
func (m *messageService) MarkRead(userId, peerId string) error {
	if peerId == "" {
		return errorx.New(errorx.CodeInvalidParam, "missing peer id")
	}
	return m.repos.Message.MarkRead(model.ConversationId(userId, peerId), userId)
}

func toMessageRespond(msg *model.Message) *respond.MessageRespond {
	rsp := &respond.MessageRespond{
		Uuid:      strconv.FormatInt(msg.Uuid, 10),
		SendId:    msg.SendId,
		ReceiveId: msg.ReceiveId,
		Type:      msg.Type,
		Content:   msg.Content,
		Url:       msg.Url,
		ReadFlag:  msg.ReadFlag,
	}
	if msg.SendAt.Valid {
		rsp.SendAt = msg.SendAt.Time.Format(constants.TIME_FORMAT)
	}
	return rsp
}
