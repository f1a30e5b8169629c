package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "jarvis-assistant/internal/assistant/delivery/http"
)

// setupAssistantDomain registers /api/v1/assistant/* and the legacy root aliases.
func (srv *HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC, srv.unexpected)

	assistantHTTP.RegisterRoutes(api.Group("/assistant"), h, srv.mw)
	assistantHTTP.RegisterLegacyRoutes(srv.gin, h, srv.mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
