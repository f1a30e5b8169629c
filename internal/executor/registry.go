package executor

import "strings"

// Registry resolves an action to the handler owning its prefix.
type Registry struct {
	handlers []Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds h. A handler registered later with the same prefix replaces the earlier one.
func (r *Registry) Register(h Handler) {
	for i, existing := range r.handlers {
		if existing.Prefix() == h.Prefix() {
			r.handlers[i] = h
			return
		}
	}
	r.handlers = append(r.handlers, h)
}

// Match returns the handler with the longest prefix of action.
func (r *Registry) Match(action string) (Handler, bool) {
	var best Handler
	for _, h := range r.handlers {
		if !strings.HasPrefix(action, h.Prefix()) {
			continue
		}
		if best == nil || len(h.Prefix()) > len(best.Prefix()) {
			best = h
		}
	}
	return best, best != nil
}

// Prefixes lists the registered prefixes in registration order.
func (r *Registry) Prefixes() []string {
	out := make([]string, 0, len(r.handlers))
	for _, h := range r.handlers {
		out = append(out, h.Prefix())
	}
	return out
}
