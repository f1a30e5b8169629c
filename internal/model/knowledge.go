package model

import "time"

// Pattern is a learned command together with the actions that worked for it.
type Pattern struct {
	SourceCommand string    `json:"command"`
	Intent        Intent    `json:"intent"`
	Actions       []string  `json:"actions"`
	Timestamp     time.Time `json:"timestamp"`
	Success       bool      `json:"success"`
	Seq           uint64    `json:"seq"`
}

// HistoryEntry is one successful execution, kept in arrival order.
type HistoryEntry struct {
	Command   string    `json:"command"`
	Actions   []string  `json:"actions"`
	Timestamp time.Time `json:"timestamp"`
}

// Source tells where a resolved action list came from.
type Source string

const (
	SourceExactMatch   Source = "exact_match"
	SourceSimilarMatch Source = "similar_match"
	SourceGenerated    Source = "generated"
	SourceLLM          Source = "llm"
)

// Resolution is the request-scoped outcome of looking up actions for a command.
type Resolution struct {
	Found           bool
	Actions         []string
	Confidence      float64
	Source          Source
	OriginalCommand string
}

// PendingExecution is an action list waiting for the user to confirm it.
type PendingExecution struct {
	ID              string    `json:"id"`
	Actions         []string  `json:"actions"`
	OriginalCommand string    `json:"originalCommand"`
	Intent          Intent    `json:"intent"`
	Confidence      float64   `json:"confidence"`
	IsGenerated     bool      `json:"isGenerated"`
	Explanation     string    `json:"explanation,omitempty"`
	Source          Source    `json:"source"`
	CreatedAt       time.Time `json:"createdAt"`
}
