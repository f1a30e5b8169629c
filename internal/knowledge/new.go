package knowledge

import (
	"sync"
	"time"

	"jarvis-assistant/internal/model"
	"jarvis-assistant/pkg/log"
)

// Store keeps learned command patterns and the success history in memory.
// It is safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	patterns   map[string]model.Pattern
	groups     map[string][]string // intent key -> commands, insertion order
	history    []model.HistoryEntry
	maxHistory int
	seq        uint64
	now        func() time.Time
	l          log.Logger
}

// New creates an empty Store.
func New(opts Options, l log.Logger) *Store {
	return &Store{
		patterns:   make(map[string]model.Pattern),
		groups:     make(map[string][]string),
		maxHistory: opts.MaxHistory,
		now:        time.Now,
		l:          l,
	}
}
