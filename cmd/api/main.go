package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jarvis-assistant/config"
	_ "jarvis-assistant/docs" // Swagger docs
	"jarvis-assistant/internal/assistant/usecase"
	"jarvis-assistant/internal/executor"
	"jarvis-assistant/internal/httpserver"
	"jarvis-assistant/internal/intent"
	"jarvis-assistant/internal/knowledge"
	"jarvis-assistant/internal/knowledge/repository"
	"jarvis-assistant/internal/knowledge/repository/file"
	"jarvis-assistant/internal/knowledge/repository/sqlite"
	"jarvis-assistant/internal/middleware"
	"jarvis-assistant/internal/synth"
	"jarvis-assistant/pkg/llmprovider"
	"jarvis-assistant/pkg/log"
	"jarvis-assistant/pkg/newsapi"
	"jarvis-assistant/pkg/shell"
	"jarvis-assistant/pkg/speech"
	"jarvis-assistant/pkg/wikipedia"
)

// @title       JARVIS Assistant API
// @description Voice and text command router with learned commands, news, Wikipedia and LLM fallback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting JARVIS assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM fallback (optional)
	var completer usecase.Completer
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Warnf(ctx, "LLM fallback not available (optional): %v", err)
	} else {
		completer = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      duration(cfg.LLM.RetryDelay, time.Second),
			MaxTotalTimeout: duration(cfg.LLM.MaxTotalTimeout, 30*time.Second),
			MaxTokens:       cfg.LLM.MaxTokens,
		}, logger)
		logger.Infof(ctx, "✅ LLM fallback initialized with %d provider(s)", len(providers))
	}

	// 4. News (optional)
	news, err := newsapi.New(newsapi.Config{
		APIKey:     cfg.News.APIKey,
		BaseURL:    cfg.News.BaseURL,
		Country:    cfg.News.Country,
		HTTPClient: &http.Client{Timeout: duration(cfg.News.Timeout, 10*time.Second)},
	})
	if err != nil {
		logger.Warnf(ctx, "News not available (optional): %v", err)
	}

	// 5. Wikipedia
	wiki, err := wikipedia.New(wikipedia.Config{
		APIURL:     cfg.Wikipedia.APIURL,
		PageURL:    cfg.Wikipedia.PageURL,
		MaxLines:   cfg.Wikipedia.MaxLines,
		CacheTTL:   duration(cfg.Wikipedia.CacheTTL, 30*time.Minute),
		HTTPClient: &http.Client{Timeout: duration(cfg.Wikipedia.Timeout, 10*time.Second)},
	})
	if err != nil {
		logger.Warnf(ctx, "Wikipedia not available (optional): %v", err)
	}

	// 6. Shell and speech
	sh, err := shell.New(shell.Config{
		Shell:       cfg.Shell.Shell,
		Timeout:     duration(cfg.Shell.Timeout, 30*time.Second),
		LaunchGrace: duration(cfg.Shell.LaunchGrace, 2*time.Second),
		MaxOutput:   cfg.Shell.MaxOutput,
		Dir:         cfg.Shell.Dir,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize shell: ", err)
		return
	}
	tools := shell.Probe(sh, cfg.Shell.Probe)
	for name, ok := range tools {
		if !ok {
			logger.Warnf(ctx, "Optional tool %s is not installed", name)
		}
	}

	speaker := speech.New(speech.Config{
		Enabled: cfg.Speech.Enabled,
		Engines: cfg.Speech.Engines,
		Voice:   cfg.Speech.Voice,
		Timeout: duration(cfg.Speech.Timeout, 30*time.Second),
	}, logger)
	logger.Infof(ctx, "Speech engine: %s", speaker.Engine())

	// 7. Knowledge store
	store := knowledge.New(knowledge.Options{MaxHistory: cfg.Knowledge.MaxHistory}, logger)

	repo, closeRepo, err := openRepository(cfg.Knowledge, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open knowledge repository: ", err)
		return
	}
	defer closeRepo()

	snap, err := repo.Load(ctx)
	if err != nil {
		logger.Warnf(ctx, "Starting with empty knowledge, load failed: %v", err)
	} else {
		report := store.Restore(ctx, snap)
		logger.Infof(ctx, "Knowledge restored: %d patterns (%d dropped, %d reindexed)",
			report.Patterns, report.Dropped, report.Reindexed)
	}

	// 8. Command router
	exec := executor.New(logger, sh,
		executor.NewsHandler(news),
		executor.WikipediaHandler(wiki),
	)

	assistantUC := usecase.New(
		logger,
		intent.New(),
		synth.New(synth.Config{
			ScreenshotDir: cfg.Synth.ScreenshotDir,
			EngineURL:     cfg.Synth.EngineURL,
		}),
		store,
		repo,
		exec,
		news,
		wiki,
		completer,
		speaker,
		cfg.Assistant,
	)

	config.Watch(func(c *config.Config) {
		assistantUC.UpdateRules(c.Assistant)
		logger.Info(ctx, "Assistant rules reloaded")
	}, func(err error) {
		logger.Warnf(ctx, "Ignoring invalid config change: %v", err)
	})

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		ShutdownTimeout:   duration(cfg.HTTPServer.ShutdownTimeout, 10*time.Second),
		Middleware:        middleware.New(logger, cfg.RateLimit),
		AssistantUseCase:  assistantUC,
		UnexpectedMessage: cfg.Assistant.Messages.Unexpected,
		Tools:             tools,
		SpeechEngine:      speaker.Engine(),
		KnowledgeDriver:   cfg.Knowledge.Driver,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// openRepository builds the knowledge repository for the configured driver.
// The returned func releases it.
func openRepository(cfg config.KnowledgeConfig, l log.Logger) (repository.Repository, func() error, error) {
	switch cfg.Driver {
	case "file", "":
		return file.New(cfg.Path, l), func() error { return nil }, nil
	case "sqlite":
		db, err := sqlite.New(cfg.Path, l)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", repository.ErrUnknownDriver, cfg.Driver)
	}
}

// duration parses s, falling back to def when s is empty or malformed.
func duration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
