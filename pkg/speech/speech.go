package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"jarvis-assistant/pkg/log"
)

// lookPath and commandContext are swapped in tests.
var (
	lookPath       = exec.LookPath
	commandContext = exec.CommandContext
)

func newExecSpeaker(cfg Config, l log.Logger, engine, path string) *execSpeaker {
	return &execSpeaker{
		l:       l,
		engine:  engine,
		path:    path,
		voice:   cfg.Voice,
		timeout: cfg.Timeout,
	}
}

func (s *execSpeaker) Speak(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := commandContext(ctx, s.path, s.args(text)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("speech: %s: %w: %s", s.engine, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (s *execSpeaker) SpeakAsync(text string) {
	go func() {
		ctx := context.Background()
		if err := s.Speak(ctx, text); err != nil {
			s.l.Warnf(ctx, "pkg.speech.SpeakAsync: %v", err)
		}
	}()
}

func (s *execSpeaker) Engine() string {
	return s.engine
}

// args passes text as a single argv element; no shell is involved.
func (s *execSpeaker) args(text string) []string {
	var args []string
	if s.voice != "" {
		switch s.engine {
		case "espeak", "say":
			args = append(args, "-v", s.voice)
		case "spd-say":
			args = append(args, "-t", s.voice)
		}
	}
	if s.engine == "spd-say" {
		args = append(args, "--wait")
	}
	return append(args, "--", text)
}

// Noop discards everything.
type Noop struct{}

func (Noop) Speak(context.Context, string) error { return nil }
func (Noop) SpeakAsync(string)                   {}
func (Noop) Engine() string                      { return "none" }
