package speech

import (
	"sync"
	"time"

	"jarvis-assistant/pkg/log"
)

// Config holds speech configuration.
type Config struct {
	Enabled bool
	Engines []string
	Voice   string
	Timeout time.Duration
}

func (c *Config) setDefaults() {
	if len(c.Engines) == 0 {
		c.Engines = DefaultEngines
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}

type execSpeaker struct {
	l       log.Logger
	engine  string
	path    string
	voice   string
	timeout time.Duration

	// serialises utterances so replies do not talk over each other
	mu sync.Mutex
}
