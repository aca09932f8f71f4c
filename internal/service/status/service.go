// Package status implements the 24-hour status records.
package status

import (
	"time"

	"go.uber.org/zap"

	"hexachats_server/internal/dao/mysql/repository"
	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/dto/respond"
	"hexachats_server/internal/model"
	"hexachats_server/pkg/constants"
	"hexachats_server/pkg/errorx"
)

// Pusher matches service.Pusher.
type Pusher interface {
	PushToUser(userId string, event respond.ChatEventRespond) bool
}

type statusService struct {
	repos  *repository.Repositories
	pusher Pusher
}

func NewStatusService(repos *repository.Repositories) *statusService {
	return &statusService{repos: repos}
}

// SetPusher attaches the realtime hub used for status.new fanout.
func (s *statusService) SetPusher(p Pusher) {
	s.pusher = p
}

// AddStatus stores a status that expires after 24 hours and fans a
// status.new event out to everyone who keeps the poster as a contact.
func (s *statusService) AddStatus(userId, text string) (*respond.StatusRespond, error) {
	if text == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "empty status text")
	}
	record := &model.StatusRecord{
		UserId:    userId,
		Text:      text,
		ExpiresAt: time.Now().Add(constants.STATUS_TTL),
	}
	if err := s.repos.Status.Create(record); err != nil {
		return nil, err
	}
	rsp := toStatusRespond(record)
	s.fanOut(userId, rsp)
	return rsp, nil
}

// GetStatusList returns userId's unexpired statuses, newest first.
func (s *statusService) GetStatusList(userId string) ([]respond.StatusRespond, error) {
	records, err := s.repos.Status.FindActiveByUserId(userId, time.Now())
	if err != nil {
		return nil, err
	}
	list := make([]respond.StatusRespond, 0, len(records))
	for i := range records {
		list = append(list, *toStatusRespond(&records[i]))
	}
	return list, nil
}

// fanOut is best effort. Finding the watchers means scanning contact
// rows pointing at the poster; delivery failures only drop the live
// notification, the record itself is already stored.
func (s *statusService) fanOut(userId string, rsp *respond.StatusRespond) {
	if s.pusher == nil {
		return
	}
	watchers, err := s.repos.Contact.FindWatchers(userId)
	if err != nil {
		zap.L().Warn("status fanout lookup failed", zap.String("user", userId), zap.Error(err))
		return
	}
	event := respond.ChatEventRespond{
		Event:   request.EventNewStatus,
		SendId:  userId,
		Content: rsp.Text,
		SendAt:  rsp.CreatedAt,
	}
	for _, w := range watchers {
		s.pusher.PushToUser(w, event)
	}
}

func toStatusRespond(record *model.StatusRecord) *respond.StatusRespond {
	return &respond.StatusRespond{
		Id:        record.ID,
		UserId:    record.UserId,
		Text:      record.Text,
		CreatedAt: record.CreatedAt.Format(constants.TIME_FORMAT),
		ExpiresAt: record.ExpiresAt.Format(constants.TIME_FORMAT),
	}
}
