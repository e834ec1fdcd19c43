package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/model"
	"scheduling-assistant/pkg/response"
)

const scopeKey = "scope"

// Auth validates the bearer session token and stores the resolved scope in
// the gin context. Requests without a live session are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		s, ok := m.sessions.Get(token)
		if !ok {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: unknown or expired session")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, s.Scope())
		c.Next()
	}
}

// ScopeFromContext returns the scope stored by Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
