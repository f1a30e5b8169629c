package speech

import (
	"context"

	"jarvis-assistant/pkg/log"
)

// ISpeaker turns text into audio output.
type ISpeaker interface {
	// Speak blocks until the engine finished speaking.
	Speak(ctx context.Context, text string) error

	// SpeakAsync speaks in the background. Failures are logged, not returned.
	SpeakAsync(text string)

	// Engine returns the engine name, "none" for the no-op speaker.
	Engine() string
}

// New picks the first installed engine. When none is installed, or the
// speaker is disabled, it returns a speaker that does nothing.
func New(cfg Config, l log.Logger) ISpeaker {
	cfg.setDefaults()
	if !cfg.Enabled {
		return Noop{}
	}
	for _, engine := range cfg.Engines {
		if path, err := lookPath(engine); err == nil {
			return newExecSpeaker(cfg, l, engine, path)
		}
	}
	return Noop{}
}
