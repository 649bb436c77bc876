package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shiprate/shiprate-server/internal/service"
	"github.com/shiprate/shiprate-server/pkg/response"
)

// ContextUserID is the gin context key holding the requester's id.
const ContextUserID = "user_id"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c, "missing bearer token")
			return
		}
		userID, err := auth.ParseToken(token)
		if err != nil {
			response.Unauthorized(c, "invalid token")
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// OptionalAuth resolves the requester when a valid token is present and
// lets the request through anonymously otherwise. The dashboard depends on
// this: an anonymous requester gets the zero snapshot, not a 401.
func OptionalAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if userID, err := auth.ParseToken(token); err == nil {
				c.Set(ContextUserID, userID)
			}
		}
		c.Next()
	}
}

// UserID returns the requester id set by the auth middleware, empty for
// anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
