package usecase

import (
	"context"

	"jarvis-assistant/internal/executor"
)

// Completer answers free-form prompts. *llmprovider.Manager satisfies it.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Executor runs action lists. *executor.Executor satisfies it.
type Executor interface {
	Execute(ctx context.Context, actions []string) executor.Result
	Launch(ctx context.Context, actions []string) executor.Result
}
