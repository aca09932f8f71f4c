package calls

import (
	"testing"
	"time"

	"hexachats_server/internal/dao/mysql/repository"
	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/model"
	"hexachats_server/pkg/errorx"
)

type fakeUserRepo struct {
	repository.UserRepository
	known map[string]bool
}

func (f *fakeUserRepo) FindByUuid(uuid string) (*model.UserInfo, error) {
	if f.known[uuid] {
		return &model.UserInfo{Uuid: uuid}, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "record not found")
}

type fakeCallRepo struct {
	repository.CallRepository
	records []model.CallRecord
}

func (f *fakeCallRepo) Create(record *model.CallRecord) error {
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeCallRepo) FindByParticipant(userId string) ([]model.CallRecord, error) {
	var out []model.CallRecord
	for _, r := range f.records {
		if r.CallerId == userId || r.CalleeId == userId {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestService() (*callService, *fakeCallRepo) {
	calls := &fakeCallRepo{}
	repos := &repository.Repositories{
		User: &fakeUserRepo{known: map[string]bool{"U1": true, "U2": true}},
		Call: calls,
	}
	return NewCallService(repos), calls
}

func TestAddCallRecord(t *testing.T) {
	svc, repo := newTestService()

	rsp, err := svc.AddCallRecord("U1", request.AddCallRecordRequest{
		CalleeId:        "U2",
		Kind:            1,
		Outcome:         0,
		StartedAt:       "2026-03-01T10:00:00Z",
		DurationSeconds: 95,
	})
	if err != nil {
		t.Fatalf("AddCallRecord: %v", err)
	}
	if rsp.Kind != 1 || rsp.DurationSeconds != 95 {
		t.Fatalf("respond = %+v", rsp)
	}
	if len(repo.records) != 1 {
		t.Fatalf("records = %d", len(repo.records))
	}
	want := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if !repo.records[0].StartedAt.Equal(want) {
		t.Fatalf("started at = %v", repo.records[0].StartedAt)
	}
}

func TestAddCallRecordRejections(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddCallRecord("U1", request.AddCallRecordRequest{CalleeId: "U1", StartedAt: "2026-03-01T10:00:00Z"})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("self call: %v", err)
	}
	_, err = svc.AddCallRecord("U1", request.AddCallRecordRequest{CalleeId: "Umissing", StartedAt: "2026-03-01T10:00:00Z"})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("missing callee: %v", err)
	}
	_, err = svc.AddCallRecord("U1", request.AddCallRecordRequest{CalleeId: "U2", StartedAt: "yesterday"})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("bad timestamp: %v", err)
	}
}

func TestGetCallRecordListBothSides(t *testing.T) {
	svc, repo := newTestService()
	repo.records = []model.CallRecord{
		{CallerId: "U1", CalleeId: "U2"},
		{CallerId: "U2", CalleeId: "U1"},
		{CallerId: "U2", CalleeId: "U3"},
	}

	list, err := svc.GetCallRecordList("U1")
	if err != nil {
		t.Fatalf("GetCallRecordList: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
}
