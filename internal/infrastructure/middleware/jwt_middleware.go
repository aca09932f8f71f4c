// Package middleware holds the gin middleware for auth, the admin gate
// and TLS redirection.
package middleware

import (
	"net/http"
	"strings"

	"hexachats_server/pkg/errorx"
	"hexachats_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where JWTAuth stores the authenticated user uuid.
const ContextUserKey = "user_id"

// JWTAuth verifies the Bearer access token and stores the user uuid in
// the context. Websocket clients cannot set headers, so a token query
// param is accepted as fallback.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"code": errorx.CodeUnauthorized,
					"msg":  "malformed token, expected Bearer",
				})
				return
			}
			tokenString = parts[1]
		} else {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "authentication required",
			})
			return
		}

		claims, err := jwt.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "token expired or invalid",
			})
			return
		}

		// Refresh tokens are only valid on the refresh endpoint.
		if claims.Subject != "access_token" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "access token required",
			})
			return
		}

		c.Set(ContextUserKey, claims.UserID)
		c.Next()
	}
}
