package http

import (
	"github.com/gin-gonic/gin"

	"disc-rental/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/login", mw.LoginRateLimit(), h.Login)
	rg.GET("/me", mw.Auth(), h.Me)
	rg.POST("/logout", h.Logout)
}
