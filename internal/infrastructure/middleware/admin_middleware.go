package middleware

import (
	"net/http"

	"hexachats_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminChecker decides whether a user passes the admin gate: either the
// is_admin flag is set or the account email matches the configured
// administrator address.
type AdminChecker interface {
	IsAdmin(uuid string) (bool, error)
}

// AdminOnly rejects requests whose session user fails the admin gate.
// Must run after JWTAuth.
func AdminOnly(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetString(ContextUserKey)
		if userId == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "authentication required",
			})
			return
		}

		ok, err := checker.IsAdmin(userId)
		if err != nil {
			zap.L().Error("admin check failed", zap.String("user", userId), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusOK, gin.H{
				"code": errorx.CodeServerBusy,
				"msg":  errorx.ErrServerBusy.Msg,
			})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": errorx.CodeForbidden,
				"msg":  errorx.ErrForbidden.Msg,
			})
			return
		}
		c.Next()
	}
}
