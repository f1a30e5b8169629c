package assistant

import (
	"context"

	"jarvis-assistant/config"
	"jarvis-assistant/internal/knowledge"
	"jarvis-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Handle routes one utterance: confirmation answers, fixed phrases,
	// learned patterns, synthesized commands and finally the language model.
	Handle(ctx context.Context, input HandleInput) (Reply, error)

	// Confirm executes the pending action list.
	Confirm(ctx context.Context) (Reply, error)

	// Cancel discards the pending action list.
	Cancel(ctx context.Context) (Reply, error)

	// Pending returns a copy of the action list awaiting confirmation.
	Pending(ctx context.Context) (model.PendingExecution, bool)

	// Stats reports the size of the learned knowledge.
	Stats(ctx context.Context) knowledge.Stats

	// UpdateRules swaps the phrase tables and reply texts.
	UpdateRules(cfg config.AssistantConfig)
}
