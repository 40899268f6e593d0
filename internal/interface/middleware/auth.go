package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/job-recruitment/pkg/helpers"
	"github.com/oksasatya/job-recruitment/pkg/response"
)

// SessionChecker reports whether the session id carried by a token is still the live one.
type SessionChecker interface {
	SessionValid(ctx context.Context, userID, sessionID string) bool
}

// Auth validates the access token from the access_token cookie or a Bearer header
// and ensures its session is still active. It sets userID in the Gin context.
func Auth(jwt *helpers.JWTManager, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			c.Abort()
			return
		}
		if sessions != nil && !sessions.SessionValid(c.Request.Context(), claims.UserID, claims.SessionID) {
			response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	token, err := c.Cookie("access_token")
	if err != nil {
		return ""
	}
	return token
}
