package assistant

import "jarvis-assistant/internal/model"

// HandleInput is one utterance.
type HandleInput struct {
	Text string
}

// Reply is what the assistant says back. Confidence and ActionsExecuted are
// only set when an action list ran.
type Reply struct {
	Message              string
	RequiresConfirmation bool
	PendingID            string
	Confidence           *float64
	ActionsExecuted      *int
	Source               model.Source
}
