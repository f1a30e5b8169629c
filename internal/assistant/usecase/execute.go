package usecase

import (
	"context"

	"jarvis-assistant/config"
	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/knowledge"
	"jarvis-assistant/internal/model"
)

// execute runs actions and learns them when every line succeeded.
func (uc *implUseCase) execute(ctx context.Context, command string, in model.Intent, actions []string, confidence float64, src model.Source) (assistant.Reply, error) {
	run := uc.exec.Execute
	if in.Launches() {
		run = uc.exec.Launch
	}
	res := run(ctx, actions)
	msg := res.Message()

	r := uc.rules.Load()
	if res.OK() {
		uc.learn(ctx, command, in, actions)
		uc.say(ctx, r.spoken(msg))
	} else {
		uc.l.Warnf(ctx, "internal.assistant.usecase.execute: %v for %q", assistant.ErrExecutionFailed, command)
		uc.say(ctx, r.cfg.Messages.ExecutionFailed)
	}

	n := len(actions)
	return assistant.Reply{
		Message:         msg,
		Confidence:      &confidence,
		ActionsExecuted: &n,
		Source:          src,
	}, nil
}

// learn records a success and persists the store. Persistence errors are logged only.
func (uc *implUseCase) learn(ctx context.Context, command string, in model.Intent, actions []string) {
	p := uc.store.RecordSuccess(command, in, actions)
	uc.l.Infof(ctx, "internal.assistant.usecase.learn: learned %q as %s", p.SourceCommand, p.Intent.Key())

	if uc.repo == nil {
		return
	}
	uc.saveMu.Lock()
	defer uc.saveMu.Unlock()
	if err := uc.repo.Save(ctx, uc.store.Snapshot()); err != nil {
		uc.l.Warnf(ctx, "internal.assistant.usecase.learn: save knowledge: %v", err)
	}
}

func (uc *implUseCase) Stats(ctx context.Context) knowledge.Stats {
	return uc.store.Stats()
}

func (uc *implUseCase) UpdateRules(cfg config.AssistantConfig) {
	uc.rules.Store(compileRules(cfg))
	uc.l.Infof(context.Background(), "internal.assistant.usecase.UpdateRules: %d danger keywords, strict confirmation %t",
		len(cfg.DangerKeywords), cfg.StrictConfirmation)
}
