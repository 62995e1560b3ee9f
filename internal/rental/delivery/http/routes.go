package http

import (
	"github.com/gin-gonic/gin"

	"disc-rental/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All rental routes require authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", mw.Auth(), h.List)
	rg.POST("", mw.Auth(), h.Create)
	rg.PATCH("/:id", mw.Auth(), h.Update)
	rg.POST("/bulk-delete", mw.Auth(), h.BulkDelete)
}
