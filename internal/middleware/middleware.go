package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ai-task-assistant/internal/model"
	"ai-task-assistant/pkg/log"
	"ai-task-assistant/pkg/response"
)

const scopeKey = "scope"

// RequestID propagates or assigns a request ID and stores it in the request context.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Auth resolves the caller identity from the configured header.
// Requests without one are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(m.identityHeader))
		if userID == "" {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: missing %s header path=%s", m.identityHeader, c.FullPath())
			response.Unauthorized(c)
			return
		}
		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// InternalKey guards administrative routes with a shared key.
// An empty configured key disables the routes.
func (m Middleware) InternalKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(InternalKeyHeader)
		if m.internalKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.InternalKey: rejected path=%s", c.FullPath())
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// GetScope returns the identity stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
