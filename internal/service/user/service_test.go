package user

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hexachats_server/internal/dao/mysql/repository"
	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/model"
	"hexachats_server/pkg/errorx"
	"hexachats_server/pkg/util/jwt"
)

type fakeUserRepo struct {
	repository.UserRepository
	users         []*model.UserInfo
	updatedStatus int8
	statusUuids   []string
}

func (f *fakeUserRepo) find(match func(*model.UserInfo) bool) (*model.UserInfo, error) {
	for _, u := range f.users {
		if match(u) {
			return u, nil
		}
	}
	return nil, errorx.New(errorx.CodeNotFound, "record not found")
}

func (f *fakeUserRepo) FindByUuid(uuid string) (*model.UserInfo, error) {
	return f.find(func(u *model.UserInfo) bool { return u.Uuid == uuid })
}

func (f *fakeUserRepo) FindByEmail(email string) (*model.UserInfo, error) {
	return f.find(func(u *model.UserInfo) bool { return u.Email == email })
}

func (f *fakeUserRepo) FindByNickname(nickname string) (*model.UserInfo, error) {
	return f.find(func(u *model.UserInfo) bool { return u.Nickname == nickname })
}

func (f *fakeUserRepo) FindAllExcept(excludeUuid string) ([]model.UserInfo, error) {
	var out []model.UserInfo
	for _, u := range f.users {
		if u.Uuid != excludeUuid {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Create(user *model.UserInfo) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) Update(user *model.UserInfo) error {
	return nil
}

func (f *fakeUserRepo) UpdateStatusByUuids(uuids []string, status int8) error {
	f.statusUuids, f.updatedStatus = uuids, status
	for _, u := range f.users {
		for _, id := range uuids {
			if u.Uuid == id {
				u.Status = status
			}
		}
	}
	return nil
}

// hashed mirrors what the gorm BeforeSave hook does in production, since
// fakes bypass gorm entirely.
func hashed(plaintext string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.MinCost)
	return string(h)
}

func newTestService() (*userInfoService, *fakeUserRepo) {
	repo := &fakeUserRepo{users: []*model.UserInfo{
		{Uuid: "U1", Nickname: "alice", Email: "alice@example.com", Password: hashed("secret123")},
		{Uuid: "U2", Nickname: "bob", Email: "bob@example.com", Password: hashed("hunter22")},
	}}
	return NewUserService(&repository.Repositories{User: repo}, nil), repo
}

func TestRegister(t *testing.T) {
	jwt.Init("test-secret", 15, 168)
	svc, repo := newTestService()

	rsp, err := svc.Register(request.RegisterRequest{
		Nickname: "carol",
		Email:    "carol@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !strings.HasPrefix(rsp.Uuid, "U") {
		t.Fatalf("uuid = %q", rsp.Uuid)
	}
	if rsp.IsAdmin != 0 {
		t.Fatal("fresh account got admin")
	}
	if len(repo.users) != 3 {
		t.Fatalf("users = %d, want 3", len(repo.users))
	}
	// Plaintext flows through RawPassword, never the stored column.
	if repo.users[2].Password == "secret123" {
		t.Fatal("plaintext password persisted")
	}
}

func TestRegisterUniqueness(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(request.RegisterRequest{Nickname: "newnick", Email: "alice@example.com", Password: "secret123"})
	if errorx.GetCode(err) != errorx.CodeConflict {
		t.Fatalf("duplicate email: %v", err)
	}
	_, err = svc.Register(request.RegisterRequest{Nickname: "alice", Email: "new@example.com", Password: "secret123"})
	if errorx.GetCode(err) != errorx.CodeConflict {
		t.Fatalf("duplicate nickname: %v", err)
	}
	_, err = svc.Register(request.RegisterRequest{Nickname: "x", Email: "not-an-email", Password: "secret123"})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("bad email: %v", err)
	}
}

func TestLogin(t *testing.T) {
	jwt.Init("test-secret", 15, 168)
	svc, _ := newTestService()

	rsp, err := svc.Login(request.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rsp.AccessToken == "" || rsp.RefreshToken == "" {
		t.Fatal("token pair missing")
	}
	claims, err := jwt.ParseToken(rsp.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "U1" || claims.Subject != "access_token" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestLoginRejections(t *testing.T) {
	jwt.Init("test-secret", 15, 168)
	svc, repo := newTestService()

	_, err := svc.Login(request.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("wrong password: %v", err)
	}
	_, err = svc.Login(request.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("unknown email: %v", err)
	}

	repo.users[0].Status = 1
	_, err = svc.Login(request.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("disabled account: %v", err)
	}
}

func TestRefreshToken(t *testing.T) {
	jwt.Init("test-secret", 15, 168)
	svc, _ := newTestService()

	refresh, _, err := jwt.GenerateRefreshToken("U1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	rsp, err := svc.RefreshToken(refresh)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	claims, err := jwt.ParseToken(rsp.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "access_token" {
		t.Fatalf("subject = %q", claims.Subject)
	}
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	jwt.Init("test-secret", 15, 168)
	svc, _ := newTestService()

	access, err := jwt.GenerateAccessToken("U1")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := svc.RefreshToken(access); errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("access token accepted for refresh: %v", err)
	}
	if _, err := svc.RefreshToken("garbage"); errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("garbage token: %v", err)
	}
}

func TestUpdateUserInfoConflicts(t *testing.T) {
	svc, _ := newTestService()

	err := svc.UpdateUserInfo("U1", request.UpdateUserInfoRequest{Nickname: "bob"})
	if errorx.GetCode(err) != errorx.CodeConflict {
		t.Fatalf("taken nickname: %v", err)
	}
	err = svc.UpdateUserInfo("U1", request.UpdateUserInfoRequest{Email: "bob@example.com"})
	if errorx.GetCode(err) != errorx.CodeConflict {
		t.Fatalf("taken email: %v", err)
	}
	if err := svc.UpdateUserInfo("U1", request.UpdateUserInfoRequest{Bio: "new bio"}); err != nil {
		t.Fatalf("UpdateUserInfo: %v", err)
	}
}

func TestDisableAndAbleUsers(t *testing.T) {
	svc, repo := newTestService()

	if err := svc.DisableUsers([]string{"U2"}); err != nil {
		t.Fatalf("DisableUsers: %v", err)
	}
	if repo.users[1].Status != 1 {
		t.Fatal("U2 not disabled")
	}
	if err := svc.AbleUsers([]string{"U2"}); err != nil {
		t.Fatalf("AbleUsers: %v", err)
	}
	if repo.users[1].Status != 0 {
		t.Fatal("U2 not re-enabled")
	}
	if err := svc.DisableUsers(nil); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatal("empty list accepted")
	}
}

func TestGetUserInfoList(t *testing.T) {
	svc, repo := newTestService()
	repo.users[1].DeletedAt = gorm.DeletedAt{Valid: true}

	list, err := svc.GetUserInfoList("U1")
	if err != nil {
		t.Fatalf("GetUserInfoList: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1 (caller excluded)", len(list))
	}
	if !list[0].IsDeleted {
		t.Fatal("soft-deleted row not flagged")
	}
}

func TestIsAdmin(t *testing.T) {
	svc, repo := newTestService()

	ok, err := svc.IsAdmin("U1")
	if err != nil {
		t.Fatalf("IsAdmin: %v", err)
	}
	if ok {
		t.Fatal("regular user reported admin")
	}
	repo.users[0].IsAdmin = 1
	if ok, _ := svc.IsAdmin("U1"); !ok {
		t.Fatal("flagged admin not recognized")
	}
}
