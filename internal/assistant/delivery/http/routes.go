package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Sending a
// message is additionally throttled per session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("/messages", mw.Auth(), mw.ChatRateLimit(), h.Send)
		chat.GET("/messages", mw.Auth(), h.List)
	}
}
