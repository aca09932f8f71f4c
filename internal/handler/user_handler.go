package handler

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"hexachats_server/internal/config"
	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/infrastructure/middleware"
	"hexachats_server/internal/service"
	"hexachats_server/pkg/constants"
	"hexachats_server/pkg/errorx"
	"hexachats_server/pkg/util/random"
)

// UserHandler serves account, auth and admin user endpoints.
type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Register handles POST /register.
func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.Register(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Login handles POST /login.
func (h *UserHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RefreshToken handles POST /auth/refreshToken.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.RefreshToken(req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Logout handles POST /user/logout.
func (h *UserHandler) Logout(c *gin.Context) {
	userId := c.GetString(middleware.ContextUserKey)
	if err := h.userSvc.Logout(userId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetUserInfo handles GET /user/getUserInfo?uuid=. Without uuid it
// returns the caller's own profile.
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	var req request.GetUserInfoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	uuid := req.Uuid
	if uuid == "" {
		uuid = c.GetString(middleware.ContextUserKey)
	}
	data, err := h.userSvc.GetUserInfo(uuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Whoami handles GET /user/whoami: the caller's own profile.
func (h *UserHandler) Whoami(c *gin.Context) {
	data, err := h.userSvc.GetUserInfo(c.GetString(middleware.ContextUserKey))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateUserInfo handles POST /user/updateUserInfo.
func (h *UserHandler) UpdateUserInfo(c *gin.Context) {
	var req request.UpdateUserInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	userId := c.GetString(middleware.ContextUserKey)
	if err := h.userSvc.UpdateUserInfo(userId, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UploadAvatar handles POST /user/uploadAvatar, multipart field
// "avatar". The file lands in the static dir and the served path goes
// on the profile.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		HandleParamError(c, err)
		return
	}
	if file.Size > constants.AVATAR_MAX_SIZE {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "avatar too large"))
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "unsupported avatar format"))
		return
	}

	userId := c.GetString(middleware.ContextUserKey)
	filename := userId + "_" + random.GetNowAndLenRandomString(8) + ext
	dst := filepath.Join(config.GetConfig().StaticSrcConfig.StaticAvatarPath, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		HandleError(c, errorx.Wrap(err, errorx.CodeServerBusy, "save avatar"))
		return
	}

	avatarPath := path.Join("/static/avatars", filename)
	if err := h.userSvc.UpdateAvatar(userId, avatarPath); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"avatar": avatarPath})
}

// GetUserInfoList handles GET /user/getUserInfoList (admin).
func (h *UserHandler) GetUserInfoList(c *gin.Context) {
	userId := c.GetString(middleware.ContextUserKey)
	data, err := h.userSvc.GetUserInfoList(userId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// AbleUsers handles POST /user/ableUsers (admin).
func (h *UserHandler) AbleUsers(c *gin.Context) {
	var req request.AbleUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.userSvc.AbleUsers(req.UuidList); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DisableUsers handles POST /user/disableUsers (admin).
func (h *UserHandler) DisableUsers(c *gin.Context) {
	var req request.AbleUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.userSvc.DisableUsers(req.UuidList); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
