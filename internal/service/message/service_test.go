package message

import (
	"strconv"
	"testing"

	"hexachats_server/internal/dao/mysql/repository"
	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/dto/respond"
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

type fakeMessageRepo struct {
	repository.MessageRepository
	stored        []model.Message
	statusUuid    int64
	statusValue   int8
	readConvId    string
	readReaderId  string
	listRequested string
	listLimit     int
}

func (f *fakeMessageRepo) Create(message *model.Message) error {
	f.stored = append(f.stored, *message)
	return nil
}

func (f *fakeMessageRepo) UpdateStatus(uuid int64, status int8) error {
	f.statusUuid, f.statusValue = uuid, status
	return nil
}

func (f *fakeMessageRepo) MarkRead(conversationId, readerId string) error {
	f.readConvId, f.readReaderId = conversationId, readerId
	return nil
}

// FindByConversationId mirrors the gorm implementation: the newest limit
// rows, newest first. stored is appended in ascending uuid order.
func (f *fakeMessageRepo) FindByConversationId(conversationId string, limit int) ([]model.Message, error) {
	f.listRequested, f.listLimit = conversationId, limit
	var out []model.Message
	for i := len(f.stored) - 1; i >= 0; i-- {
		if f.stored[i].ConversationId != conversationId {
			continue
		}
		out = append(out, f.stored[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type pusherFunc func(userId string, event respond.ChatEventRespond) bool

func (f pusherFunc) PushToUser(userId string, event respond.ChatEventRespond) bool {
	return f(userId, event)
}

func newTestService() (*messageService, *fakeMessageRepo) {
	messages := &fakeMessageRepo{}
	repos := &repository.Repositories{
		User: &fakeUserRepo{users: map[string]*model.UserInfo{
			"U1": {Uuid: "U1", Nickname: "alice"},
			"U2": {Uuid: "U2", Nickname: "bob"},
			"U3": {Uuid: "U3", Nickname: "eve", Status: constants.USER_STATUS_DISABLE},
		}},
		Message: messages,
	}
	return NewMessageService(repos), messages
}

func TestSendMessageStoresCanonicalConversation(t *testing.T) {
	svc, repo := newTestService()

	rsp, err := svc.SendMessage("U2", request.SendMessageRequest{
		ReceiveId: "U1",
		Type:      0,
		Content:   "hello",
	})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if len(repo.stored) != 1 {
		t.Fatalf("stored = %d, want 1", len(repo.stored))
	}
	if got := repo.stored[0].ConversationId; got != model.ConversationId("U1", "U2") {
		t.Fatalf("conversation id = %q", got)
	}
	if rsp.Uuid == "" || rsp.Uuid == "0" {
		t.Fatalf("uuid = %q", rsp.Uuid)
	}
	if rsp.SendAt == "" {
		t.Fatal("send_at missing")
	}
}

func TestSendMessageRejections(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SendMessage("U1", request.SendMessageRequest{ReceiveId: "U1", Content: "hi"})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("self message: %v", err)
	}
	_, err = svc.SendMessage("U1", request.SendMessageRequest{ReceiveId: "U2"})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("empty message: %v", err)
	}
	_, err = svc.SendMessage("U1", request.SendMessageRequest{ReceiveId: "Umissing", Content: "hi"})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("missing recipient: %v", err)
	}
	_, err = svc.SendMessage("U1", request.SendMessageRequest{ReceiveId: "U3", Content: "hi"})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("disabled recipient: %v", err)
	}
}

func TestSendMessageMarksDelivered(t *testing.T) {
	svc, repo := newTestService()

	var pushed respond.ChatEventRespond
	svc.SetPusher(pusherFunc(func(userId string, event respond.ChatEventRespond) bool {
		pushed = event
		return true
	}))

	if _, err := svc.SendMessage("U1", request.SendMessageRequest{ReceiveId: "U2", Content: "hi"}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if pushed.Event != request.EventChatMessage {
		t.Fatalf("event = %q", pushed.Event)
	}
	if repo.statusValue != 1 || repo.statusUuid != repo.stored[0].Uuid {
		t.Fatalf("delivered status not recorded: uuid=%d status=%d", repo.statusUuid, repo.statusValue)
	}
}

func TestSendMessageOfflineStaysStored(t *testing.T) {
	svc, repo := newTestService()
	svc.SetPusher(pusherFunc(func(string, respond.ChatEventRespond) bool { return false }))

	if _, err := svc.SendMessage("U1", request.SendMessageRequest{ReceiveId: "U2", Content: "hi"}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if repo.statusValue != 0 {
		t.Fatalf("status = %d, want stored", repo.statusValue)
	}
}

func TestGetMessageListClampsLimit(t *testing.T) {
	svc, repo := newTestService()

	if _, err := svc.GetMessageList("U1", "U2", 100000); err != nil {
		t.Fatalf("GetMessageList: %v", err)
	}
	if repo.listLimit != constants.MESSAGE_LIST_LIMIT {
		t.Fatalf("limit = %d, want %d", repo.listLimit, constants.MESSAGE_LIST_LIMIT)
	}
	if repo.listRequested != model.ConversationId("U1", "U2") {
		t.Fatalf("conversation id = %q", repo.listRequested)
	}
	if _, err := svc.GetMessageList("U1", "", 10); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatal("empty peer accepted")
	}
}

func TestGetMessageListReturnsNewestPage(t *testing.T) {
	svc, repo := newTestService()

	conv := model.ConversationId("U1", "U2")
	total := constants.MESSAGE_LIST_LIMIT + 50
	for i := 1; i <= total; i++ {
		repo.stored = append(repo.stored, model.Message{
			Uuid:           int64(i),
			ConversationId: conv,
			SendId:         "U1",
			ReceiveId:      "U2",
			Content:        strconv.Itoa(i),
		})
	}

	list, err := svc.GetMessageList("U1", "U2", 0)
	if err != nil {
		t.Fatalf("GetMessageList: %v", err)
	}
	if len(list) != constants.MESSAGE_LIST_LIMIT {
		t.Fatalf("len = %d, want %d", len(list), constants.MESSAGE_LIST_LIMIT)
	}
	// Once the conversation outgrows the page size, the page must cover
	// the newest messages, in chronological order.
	wantFirst := strconv.Itoa(total - constants.MESSAGE_LIST_LIMIT + 1)
	if list[0].Uuid != wantFirst {
		t.Fatalf("first uuid = %s, want %s", list[0].Uuid, wantFirst)
	}
	if last := list[len(list)-1].Uuid; last != strconv.Itoa(total) {
		t.Fatalf("last uuid = %s, the latest message is missing from history", last)
	}
}

func TestMarkRead(t *testing.T) {
	svc, repo := newTestService()

	if err := svc.MarkRead("U1", "U2"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if repo.readConvId != model.ConversationId("U1", "U2") || repo.readReaderId != "U1" {
		t.Fatalf("conv=%q reader=%q", repo.readConvId, repo.readReaderId)
	}
}
