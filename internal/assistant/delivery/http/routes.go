package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Routes that may run commands are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/command", mw.RateLimit(), h.Command)
	rg.POST("/confirm", mw.RateLimit(), h.Confirm)
	rg.POST("/cancel", h.Cancel)
	rg.GET("/pending", h.Pending)
	rg.GET("/stats", h.Stats)
}

// RegisterLegacyRoutes keeps the paths older clients post to.
func RegisterLegacyRoutes(r gin.IRoutes, h *handler, mw middleware.Middleware) {
	r.POST("/virtualAssistant", mw.RateLimit(), h.Command)
	r.GET("/stats", h.Stats)
}
