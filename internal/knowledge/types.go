package knowledge

import "jarvis-assistant/internal/model"

// Match is one similarity lookup hit.
type Match struct {
	Pattern    model.Pattern
	Similarity float64
}

// Stats summarises the store contents.
type Stats struct {
	PatternCount int `json:"totalCommands"`
	HistoryCount int `json:"totalHistory"`
	GroupCount   int `json:"intentPatterns"`
}

// Group is the set of patterns sharing one intent key, in insertion order.
type Group struct {
	Key      string
	Patterns []model.Pattern
}

// Snapshot is the persistable state of a Store.
type Snapshot struct {
	Patterns []model.Pattern
	Groups   []Group
	History  []model.HistoryEntry
}

// RestoreReport counts the consistency repairs made while restoring.
type RestoreReport struct {
	Patterns  int
	Dropped   int
	Reindexed int
}

// Options configures a Store.
type Options struct {
	// MaxHistory caps the history list; the oldest entries are evicted first.
	// Zero means unbounded.
	MaxHistory int
}
