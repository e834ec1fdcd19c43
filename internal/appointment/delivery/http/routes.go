package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	appointments := rg.Group("/appointments")
	{
		appointments.GET("", mw.Auth(), h.List)
		appointments.GET("/stats", mw.Auth(), h.Stats)
	}
}
