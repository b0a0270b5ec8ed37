package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-assistant/internal/middleware"
)

// RegisterRoutes maps the assistant endpoints. Every route requires an identity.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := rg.Group("/ai", mw.Auth())
	{
		ai.POST("/query", h.Query)
		ai.GET("/history", h.History)
		ai.POST("/confirm-breakdown", h.ConfirmBreakdown)
	}
}

// RegisterInternalRoutes maps administrative endpoints guarded by the internal key.
func RegisterInternalRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := rg.Group("/ai", mw.InternalKey())
	{
		ai.POST("/rate-limit/:user_id/reset", h.ResetRateLimit)
	}
}
