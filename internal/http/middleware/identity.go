package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/snipbin/snipbin/pkg/ctxutil"
	"github.com/snipbin/snipbin/pkg/logger"
)

// TokenValidator resolves a bearer token to a user ID.
type TokenValidator interface {
	Validate(token string) (string, error)
}

// Identity extracts the requester from a Bearer token, if one is presented.
// Requests without an Authorization header proceed anonymously; reads stay
// public and write handlers decide for themselves. A malformed or expired
// token is rejected outright so a client never acts under a silently dropped
// identity.
func Identity(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == header || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "unauthorized", "message": "invalid authorization header"},
			})
			return
		}
		userID, err := tokens.Validate(raw)
		if err != nil {
			logger.Debug(c.Request.Context(), "token rejected: %s", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "unauthorized", "message": "invalid or expired token"},
			})
			return
		}
		ctx := ctxutil.WithIdentity(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
