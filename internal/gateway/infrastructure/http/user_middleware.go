package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/morrow-app/morrow/internal/gateway/domain"
)

const (
	UserIDHeaderName = "X-User-ID"
)

// NewUserMiddleware trusts the caller's identity header. Authentication
// happens in front of the gateway.
func NewUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeaderName))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing " + UserIDHeaderName + " header"})
			return
		}

		c.Set(domain.UserIDContextKey, userID)
		c.Next()
	}
}
