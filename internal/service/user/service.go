// Package user implements account, auth and admin user management.
package user

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"

	"hexachats_server/internal/config"
	"hexachats_server/internal/dao/mysql/repository"
	myredis "hexachats_server/internal/dao/redis"
	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/dto/respond"
	"hexachats_server/internal/model"
	"hexachats_server/pkg/constants"
	"hexachats_server/pkg/errorx"
	"hexachats_server/pkg/util/jwt"
	"hexachats_server/pkg/util/random"
)

type userInfoService struct {
	repos *repository.Repositories
	cache myredis.CacheService
}

// NewUserService wires the repositories and an optional cache. A nil
// cache disables caching and session tracking degrades to pure JWT
// validation.
func NewUserService(repos *repository.Repositories, cache myredis.CacheService) *userInfoService {
	return &userInfoService{repos: repos, cache: cache}
}

func (u *userInfoService) checkEmailValid(email string) bool {
	pattern := `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	match, err := regexp.MatchString(pattern, email)
	if err != nil {
		zap.L().Error(err.Error())
	}
	return match
}

func userInfoCacheKey(uuid string) string {
	return "user_info_" + uuid
}

func refreshTokenCacheKey(userId string) string {
	return "refresh_token_id_" + userId
}

func toGetUserInfoRespond(user *model.UserInfo) *respond.GetUserInfoRespond {
	rsp := &respond.GetUserInfoRespond{
		Uuid:      user.Uuid,
		Nickname:  user.Nickname,
		Email:     user.Email,
		Telephone: user.Telephone,
		Avatar:    user.Avatar,
		Bio:       user.Bio,
		IsAdmin:   user.IsAdmin,
		Status:    user.Status,
		CreatedAt: user.CreatedAt.Format(constants.TIME_FORMAT),
	}
	if user.LastOnlineAt.Valid {
		rsp.LastOnlineAt = user.LastOnlineAt.Time.Format(constants.TIME_FORMAT)
	}
	if user.LastOfflineAt.Valid {
		rsp.LastOfflineAt = user.LastOfflineAt.Time.Format(constants.TIME_FORMAT)
	}
	return rsp
}

// Register creates a user after checking email and nickname uniqueness.
func (u *userInfoService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	if !u.checkEmailValid(req.Email) {
		return nil, errorx.New(errorx.CodeInvalidParam, "invalid email format")
	}
	if _, err := u.repos.User.FindByEmail(req.Email); err == nil {
		return nil, errorx.New(errorx.CodeConflict, "email already registered")
	} else if !errorx.IsNotFound(err) {
		return nil, err
	}
	if _, err := u.repos.User.FindByNickname(req.Nickname); err == nil {
		return nil, errorx.New(errorx.CodeConflict, "nickname already taken")
	} else if !errorx.IsNotFound(err) {
		return nil, err
	}

	newUser := &model.UserInfo{
		Uuid:        "U" + random.GetNowAndLenRandomString(11),
		Nickname:    req.Nickname,
		Email:       req.Email,
		Telephone:   req.Telephone,
		RawPassword: req.Password,
		IsAdmin:     0,
		Status:      constants.USER_STATUS_ENABLE,
	}
	if config.GetConfig().AdminConfig.AdminEmail != "" && req.Email == config.GetConfig().AdminConfig.AdminEmail {
		newUser.IsAdmin = 1
	}
	if err := u.repos.User.Create(newUser); err != nil {
		return nil, err
	}
	zap.L().Info("user registered", zap.String("uuid", newUser.Uuid), zap.String("email", newUser.Email))

	rsp := &respond.RegisterRespond{
		Uuid:      newUser.Uuid,
		Nickname:  newUser.Nickname,
		Email:     newUser.Email,
		Telephone: newUser.Telephone,
		Avatar:    newUser.Avatar,
		Bio:       newUser.Bio,
		IsAdmin:   newUser.IsAdmin,
		Status:    newUser.Status,
		CreatedAt: newUser.CreatedAt.Format(constants.TIME_FORMAT),
	}
	return rsp, nil
}

// Login verifies credentials and issues the access/refresh token pair.
// The refresh token id is stored in redis so a later login can kick the
// previous session.
func (u *userInfoService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := u.repos.User.FindByEmail(req.Email)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUnauthorized, "email or password incorrect")
		}
		return nil, err
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeUnauthorized, "email or password incorrect")
	}
	if user.Status == constants.USER_STATUS_DISABLE {
		return nil, errorx.New(errorx.CodeForbidden, "account disabled")
	}

	accessToken, err := jwt.GenerateAccessToken(user.Uuid)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "generate access token")
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(user.Uuid)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "generate refresh token")
	}
	if u.cache != nil {
		expiry := time.Duration(constants.REFRESH_TOKEN_EXPIRY_HOURS) * time.Hour
		if err := u.cache.Set(context.Background(), refreshTokenCacheKey(user.Uuid), tokenID, expiry); err != nil {
			zap.L().Error("store refresh token id failed", zap.Error(err))
		}
	}

	rsp := &respond.LoginRespond{
		Uuid:         user.Uuid,
		Nickname:     user.Nickname,
		Email:        user.Email,
		Telephone:    user.Telephone,
		Avatar:       user.Avatar,
		Bio:          user.Bio,
		IsAdmin:      user.IsAdmin,
		Status:       user.Status,
		CreatedAt:    user.CreatedAt.Format(constants.TIME_FORMAT),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
	return rsp, nil
}

// RefreshToken validates the refresh token, checks it is the one on
// record for the user, and issues a fresh access token.
func (u *userInfoService) RefreshToken(refreshToken string) (*respond.RefreshTokenRespond, error) {
	claims, err := jwt.ParseToken(refreshToken)
	if err != nil {
		return nil, errorx.New(errorx.CodeUnauthorized, "invalid refresh token")
	}
	if claims.Subject != "refresh_token" {
		return nil, errorx.New(errorx.CodeUnauthorized, "not a refresh token")
	}
	if u.cache != nil {
		stored, err := u.cache.GetOrError(context.Background(), refreshTokenCacheKey(claims.UserID))
		if err != nil {
			return nil, errorx.New(errorx.CodeUnauthorized, "session expired")
		}
		if stored != claims.TokenID {
			return nil, errorx.New(errorx.CodeUnauthorized, "session superseded")
		}
	}
	user, err := u.repos.User.FindByUuid(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user.Status == constants.USER_STATUS_DISABLE {
		return nil, errorx.New(errorx.CodeForbidden, "account disabled")
	}

	accessToken, err := jwt.GenerateAccessToken(user.Uuid)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "generate access token")
	}
	return &respond.RefreshTokenRespond{AccessToken: accessToken}, nil
}

// Logout drops the refresh token on record and the cached profile.
func (u *userInfoService) Logout(userId string) error {
	if u.cache == nil {
		return nil
	}
	ctx := context.Background()
	if err := u.cache.Delete(ctx, refreshTokenCacheKey(userId)); err != nil {
		zap.L().Error("delete refresh token failed", zap.Error(err))
	}
	if err := u.cache.Delete(ctx, userInfoCacheKey(userId)); err != nil {
		zap.L().Error("delete cached user info failed", zap.Error(err))
	}
	return nil
}

// GetUserInfo reads the profile, cache first.
func (u *userInfoService) GetUserInfo(uuid string) (*respond.GetUserInfoRespond, error) {
	if u.cache != nil {
		cached, err := u.cache.Get(context.Background(), userInfoCacheKey(uuid))
		if err == nil && cached != "" {
			var rsp respond.GetUserInfoRespond
			if err := json.Unmarshal([]byte(cached), &rsp); err == nil {
				return &rsp, nil
			}
			zap.L().Warn("corrupt cached user info", zap.String("uuid", uuid))
		}
	}
	user, err := u.repos.User.FindByUuid(uuid)
	if err != nil {
		return nil, err
	}
	rsp := toGetUserInfoRespond(user)
	if u.cache != nil {
		if data, err := json.Marshal(rsp); err == nil {
			if err := u.cache.Set(context.Background(), userInfoCacheKey(uuid), string(data), constants.USER_INFO_CACHE_TTL); err != nil {
				zap.L().Error("cache user info failed", zap.Error(err))
			}
		}
	}
	return rsp, nil
}

// UpdateUserInfo applies profile edits and invalidates the cache entry.
func (u *userInfoService) UpdateUserInfo(userId string, req request.UpdateUserInfoRequest) error {
	user, err := u.repos.User.FindByUuid(userId)
	if err != nil {
		return err
	}
	if req.Nickname != "" && req.Nickname != user.Nickname {
		if _, err := u.repos.User.FindByNickname(req.Nickname); err == nil {
			return errorx.New(errorx.CodeConflict, "nickname already taken")
		} else if !errorx.IsNotFound(err) {
			return err
		}
		user.Nickname = req.Nickname
	}
	if req.Email != "" && req.Email != user.Email {
		if !u.checkEmailValid(req.Email) {
			return errorx.New(errorx.CodeInvalidParam, "invalid email format")
		}
		if _, err := u.repos.User.FindByEmail(req.Email); err == nil {
			return errorx.New(errorx.CodeConflict, "email already registered")
		} else if !errorx.IsNotFound(err) {
			return err
		}
		user.Email = req.Email
	}
	if req.Telephone != "" {
		user.Telephone = req.Telephone
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if err := u.repos.User.Update(user); err != nil {
		return err
	}
	u.invalidate(userId)
	return nil
}

// UpdateAvatar stores the served avatar path on the profile.
func (u *userInfoService) UpdateAvatar(userId, avatarPath string) error {
	user, err := u.repos.User.FindByUuid(userId)
	if err != nil {
		return err
	}
	user.Avatar = avatarPath
	if err := u.repos.User.Update(user); err != nil {
		return err
	}
	u.invalidate(userId)
	return nil
}

// GetUserInfoList lists every other account, for the admin console.
func (u *userInfoService) GetUserInfoList(ownerId string) ([]respond.GetUserListRespond, error) {
	users, err := u.repos.User.FindAllExcept(ownerId)
	if err != nil {
		return nil, err
	}
	list := make([]respond.GetUserListRespond, 0, len(users))
	for _, usr := range users {
		list = append(list, respond.GetUserListRespond{
			Uuid:      usr.Uuid,
			Nickname:  usr.Nickname,
			Email:     usr.Email,
			IsAdmin:   usr.IsAdmin,
			Status:    usr.Status,
			IsDeleted: usr.DeletedAt.Valid,
		})
	}
	return list, nil
}

// AbleUsers re-enables the given accounts.
func (u *userInfoService) AbleUsers(uuidList []string) error {
	return u.setUsersStatus(uuidList, constants.USER_STATUS_ENABLE)
}

// DisableUsers disables the given accounts and drops their sessions.
func (u *userInfoService) DisableUsers(uuidList []string) error {
	if err := u.setUsersStatus(uuidList, constants.USER_STATUS_DISABLE); err != nil {
		return err
	}
	if u.cache != nil {
		ctx := context.Background()
		for _, uuid := range uuidList {
			if err := u.cache.Delete(ctx, refreshTokenCacheKey(uuid)); err != nil {
				zap.L().Error("drop session failed", zap.String("uuid", uuid), zap.Error(err))
			}
		}
	}
	return nil
}

func (u *userInfoService) setUsersStatus(uuidList []string, status int8) error {
	if len(uuidList) == 0 {
		return errorx.New(errorx.CodeInvalidParam, "empty uuid list")
	}
	if err := u.repos.User.UpdateStatusByUuids(uuidList, status); err != nil {
		return err
	}
	for _, uuid := range uuidList {
		u.invalidate(uuid)
	}
	return nil
}

// IsAdmin reports whether the account may use admin routes, either via
// the is_admin flag or by matching the configured administrator email.
func (u *userInfoService) IsAdmin(uuid string) (bool, error) {
	user, err := u.repos.User.FindByUuid(uuid)
	if err != nil {
		return false, err
	}
	if user.IsAdmin == 1 {
		return true, nil
	}
	adminEmail := config.GetConfig().AdminConfig.AdminEmail
	return adminEmail != "" && user.Email == adminEmail, nil
}

func (u *userInfoService) invalidate(uuid string) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(context.Background(), userInfoCacheKey(uuid)); err != nil {
		zap.L().Error(fmt.Sprintf("invalidate user cache %s failed", uuid), zap.Error(err))
	}
}
