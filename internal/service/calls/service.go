// Package calls implements the call log.
package calls

import (
	"time"

	"hexachats_server/internal/dao/mysql/repository"
	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/dto/respond"
	"hexachats_server/internal/model"
	"hexachats_server/pkg/constants"
	"hexachats_server/pkg/errorx"
)

type callService struct {
	repos *repository.Repositories
}

func NewCallService(repos *repository.Repositories) *callService {
	return &callService{repos: repos}
}

// AddCallRecord appends an entry to the caller's log. StartedAt comes in
// as RFC 3339 from the client that timed the call.
func (c *callService) AddCallRecord(callerId string, req request.AddCallRecordRequest) (*respond.CallRecordRespond, error) {
	if callerId == req.CalleeId {
		return nil, errorx.New(errorx.CodeInvalidParam, "cannot call yourself")
	}
	if _, err := c.repos.User.FindByUuid(req.CalleeId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "callee not found")
		}
		return nil, err
	}
	startedAt, err := time.Parse(time.RFC3339, req.StartedAt)
	if err != nil {
		return nil, errorx.New(errorx.CodeInvalidParam, "started_at must be RFC 3339")
	}
	record := &model.CallRecord{
		CallerId:        callerId,
		CalleeId:        req.CalleeId,
		Kind:            req.Kind,
		Outcome:         req.Outcome,
		StartedAt:       startedAt,
		DurationSeconds: req.DurationSeconds,
	}
	if err := c.repos.Call.Create(record); err != nil {
		return nil, err
	}
	return toCallRecordRespond(record), nil
}

// GetCallRecordList returns every call the user took part in, either side.
func (c *callService) GetCallRecordList(userId string) ([]respond.CallRecordRespond, error) {
	records, err := c.repos.Call.FindByParticipant(userId)
	if err != nil {
		return nil, err
	}
	list := make([]respond.CallRecordRespond, 0, len(records))
	for i := range records {
		list = append(list, *toCallRecordRespond(&records[i]))
	}
	return list, nil
}

func toCallRecordRespond(record *model.CallRecord) *respond.CallRecordRespond {
	return &respond.CallRecordRespond{
		Id:              record.ID,
		CallerId:        record.CallerId,
		CalleeId:        record.CalleeId,
		Kind:            record.Kind,
		Outcome:         record.Outcome,
		StartedAt:       record.StartedAt.Format(constants.TIME_FORMAT),
		DurationSeconds: record.DurationSeconds,
	}
}
