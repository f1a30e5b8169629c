package synth

import (
	"os"
	"path/filepath"
	"time"
)

// Config configures a Synthesizer. Zero values pick sensible defaults.
type Config struct {
	// ScreenshotDir defaults to $HOME/Pictures.
	ScreenshotDir string
	// EngineURL is a fmt template with one %s for the escaped query.
	EngineURL string
	Now       func() time.Time
}

// Synthesizer builds shell commands for intents that have no learned mapping.
type Synthesizer struct {
	screenshotDir string
	engineURL     string
	now           func() time.Time
}

// New creates a Synthesizer.
func New(cfg Config) *Synthesizer {
	s := &Synthesizer{
		screenshotDir: cfg.ScreenshotDir,
		engineURL:     cfg.EngineURL,
		now:           cfg.Now,
	}
	if s.screenshotDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		s.screenshotDir = filepath.Join(home, "Pictures")
	}
	if s.engineURL == "" {
		s.engineURL = DefaultEngineURL
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}
