package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/middleware"
	"jarvis-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	srv             *http.Server
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Assistant domain
	assistantUC assistant.UseCase
	unexpected  string

	// Readiness details
	tools        map[string]bool
	speechEngine string
	knowledge    string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Middleware

	// Assistant domain
	AssistantUseCase  assistant.UseCase
	// UnexpectedMessage is the error message of a 500 answer.
	UnexpectedMessage string

	// Tools is the result of the startup probe, program name to availability.
	Tools           map[string]bool
	SpeechEngine    string
	KnowledgeDriver string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		assistantUC:     cfg.AssistantUseCase,
		unexpected:      cfg.UnexpectedMessage,
		tools:           cfg.Tools,
		speechEngine:    cfg.SpeechEngine,
		knowledge:       cfg.KnowledgeDriver,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant use case is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
