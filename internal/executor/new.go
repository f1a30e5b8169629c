package executor

import (
	"jarvis-assistant/pkg/log"
	"jarvis-assistant/pkg/shell"
)

// Executor runs resolved action lists.
type Executor struct {
	l        log.Logger
	shell    shell.IShell
	registry *Registry
}

// New creates an Executor. Actions no handler claims go to sh.
func New(l log.Logger, sh shell.IShell, handlers ...Handler) *Executor {
	reg := NewRegistry()
	for _, h := range handlers {
		reg.Register(h)
	}
	return &Executor{
		l:        l,
		shell:    sh,
		registry: reg,
	}
}
