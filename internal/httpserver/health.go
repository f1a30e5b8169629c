package httpserver

import (
	"github.com/gin-gonic/gin"

	"jarvis-assistant/pkg/response"
)

const (
	HealthMessage = "JARVIS at your service"
	HealthVersion = "1.0.0"
	ServiceName   = "jarvis-assistant"
)

func identity(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck godoc
// @Summary Health check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, identity("healthy"))
}

// readyCheck reports the desktop tools found at startup along with the
// speech engine and knowledge backend in use.
// @Summary Readiness check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	body := identity("ready")
	body["tools"] = srv.tools
	body["speech"] = srv.speechEngine
	body["knowledge"] = srv.knowledge
	body["stats"] = srv.assistantUC.Stats(c.Request.Context())
	response.OK(c, body)
}

// liveCheck godoc
// @Summary Liveness check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, identity("alive"))
}
