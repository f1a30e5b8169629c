package executor

import (
	"context"
	"strings"
)

// Handler runs actions that start with Prefix instead of sending them to the shell.
type Handler interface {
	Prefix() string
	Handle(ctx context.Context, action string) (string, error)
}

// Result holds one output line per executed action, in order.
type Result struct {
	Lines []string
}

// OK reports whether no action failed.
func (r Result) OK() bool {
	for _, line := range r.Lines {
		if strings.HasPrefix(line, ErrorPrefix) {
			return false
		}
	}
	return true
}

// Message joins the lines. An empty result reads as a generic success.
func (r Result) Message() string {
	msg := strings.Join(r.Lines, "\n")
	if msg == "" {
		return MsgCommandsSucceeded
	}
	return msg
}
