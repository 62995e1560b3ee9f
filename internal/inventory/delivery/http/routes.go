package http

import (
	"github.com/gin-gonic/gin"

	"disc-rental/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All inventory routes require authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.GET("", mw.Auth(), h.List)
		items.POST("", mw.Auth(), h.Create)
		items.PATCH("/:id", mw.Auth(), h.Update)
		items.POST("/bulk-delete", mw.Auth(), h.BulkDelete)
		items.POST("/image", mw.Auth(), h.UploadImage)
	}
}
