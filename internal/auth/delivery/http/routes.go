package http

import (
	"github.com/gin-gonic/gin"

	"scheduling-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Login is the
// only unauthenticated route in the API.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", mw.Auth(), h.Logout)
		authGroup.GET("/me", mw.Auth(), h.Me)
	}
}
