package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/assistant"
	pkgErrors "jarvis-assistant/pkg/errors"
	"jarvis-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Command(c *gin.Context)
	Confirm(c *gin.Context)
	Cancel(c *gin.Context)
	Pending(c *gin.Context)
	Stats(c *gin.Context)
}

type handler struct {
	l          log.Logger
	uc         assistant.UseCase
	unexpected string
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the assistant domain.
// unexpected is the message answered with a 500; empty keeps the default one.
func New(l log.Logger, uc assistant.UseCase, unexpected string) *handler {
	if unexpected == "" {
		unexpected = pkgErrors.ErrInternalServerError.Message
	}
	return &handler{
		l:          l,
		uc:         uc,
		unexpected: unexpected,
	}
}
