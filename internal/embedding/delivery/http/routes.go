package http

import (
	"github.com/gin-gonic/gin"

	"infrabed/internal/middleware"
)

// RegisterRoutes maps the embedding endpoints. Every route requires a
// signed request.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/calcemb", mw.Signed(), h.EmbedOne)
	rg.POST("/calcembm", mw.Signed(), h.EmbedMany)
	rg.GET("/models", mw.Signed(), h.Models)
}
