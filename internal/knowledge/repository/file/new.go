package file

import (
	"sync"

	"jarvis-assistant/pkg/log"
)

type implRepository struct {
	mu   sync.Mutex
	path string
	l    log.Logger
}

// New creates a JSON file repository writing to path.
func New(path string, l log.Logger) *implRepository {
	return &implRepository{
		path: path,
		l:    l,
	}
}
