package usecase

import (
	"context"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/model"
)

func (uc *implUseCase) Confirm(ctx context.Context) (assistant.Reply, error) {
	return uc.confirm(ctx, "")
}

func (uc *implUseCase) Cancel(ctx context.Context) (assistant.Reply, error) {
	return uc.cancel(ctx, "")
}

func (uc *implUseCase) Pending(ctx context.Context) (model.PendingExecution, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.pending == nil {
		return model.PendingExecution{}, false
	}
	return *uc.pending, true
}

// confirm executes the pending list. A non-empty id only matches that list,
// so two answers to the same question cannot both run it.
func (uc *implUseCase) confirm(ctx context.Context, id string) (assistant.Reply, error) {
	r := uc.rules.Load()
	p, ok := uc.claim(id)
	if !ok {
		return uc.fail(ctx, assistant.ErrNoPendingExecution, r.cfg.Messages.NothingPending)
	}

	uc.l.Infof(ctx, "internal.assistant.usecase.confirm: executing pending %s", p.ID)
	uc.say(ctx, r.cfg.Messages.Executing)

	return uc.execute(ctx, p.OriginalCommand, p.Intent, p.Actions, p.Confidence, p.Source)
}

func (uc *implUseCase) cancel(ctx context.Context, id string) (assistant.Reply, error) {
	r := uc.rules.Load()
	p, ok := uc.claim(id)
	if !ok {
		return uc.fail(ctx, assistant.ErrNoPendingExecution, r.cfg.Messages.NothingPending)
	}

	uc.l.Infof(ctx, "internal.assistant.usecase.cancel: dropped pending %s", p.ID)
	uc.say(ctx, r.cfg.Messages.Cancelled)
	return assistant.Reply{Message: r.cfg.Messages.Cancelled}, nil
}

// hold stores p as the pending list, replacing any older one.
func (uc *implUseCase) hold(ctx context.Context, p model.PendingExecution, msg string) (assistant.Reply, error) {
	uc.mu.Lock()
	prev := uc.pending
	uc.pending = &p
	uc.mu.Unlock()

	if prev != nil {
		uc.l.Infof(ctx, "internal.assistant.usecase.hold: pending %s replaced by %s", prev.ID, p.ID)
	}
	uc.say(ctx, msg)

	confidence := p.Confidence
	return assistant.Reply{
		Message:              msg,
		RequiresConfirmation: true,
		PendingID:            p.ID,
		Confidence:           &confidence,
		Source:               p.Source,
	}, nil
}

// claim takes the pending list out of the slot. An empty id takes whatever is pending.
func (uc *implUseCase) claim(id string) (model.PendingExecution, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.pending == nil || (id != "" && uc.pending.ID != id) {
		return model.PendingExecution{}, false
	}
	p := *uc.pending
	uc.pending = nil
	return p, true
}
