package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/executor"
	"jarvis-assistant/internal/model"
	"jarvis-assistant/pkg/newsapi"
	"jarvis-assistant/pkg/wikipedia"
)

// Handle routes one utterance.
func (uc *implUseCase) Handle(ctx context.Context, input assistant.HandleInput) (assistant.Reply, error) {
	raw := strings.TrimSpace(input.Text)
	text := strings.ToLower(raw)
	if text == "" {
		return uc.fail(ctx, assistant.ErrEmptyText, assistant.MsgEmptyText)
	}

	r := uc.rules.Load()
	uc.l.Infof(ctx, "internal.assistant.usecase.Handle: received %q", text)

	var stale string
	if p, ok := uc.Pending(ctx); ok {
		switch {
		case r.negates(text):
			return uc.cancel(ctx, p.ID)
		case r.affirms(text):
			return uc.confirm(ctx, p.ID)
		case r.cfg.StrictConfirmation:
			return uc.fail(ctx, assistant.ErrConfirmationRequired, r.cfg.Messages.ConfirmationRequired)
		}
		stale = p.ID
	} else if r.onlyConfirmation(text) {
		return uc.fail(ctx, assistant.ErrNoPendingExecution, r.cfg.Messages.NothingPending)
	}

	reply, err := uc.route(ctx, raw, r)
	if err == nil && stale != "" {
		if _, released := uc.claim(stale); released {
			uc.l.Infof(ctx, "internal.assistant.usecase.Handle: dropped pending %s for a new request", stale)
		}
	}
	return reply, err
}

// route answers an utterance that is not a confirmation answer.
func (uc *implUseCase) route(ctx context.Context, raw string, r *rules) (assistant.Reply, error) {
	clean := r.strip(raw)
	key := phrase(clean)

	if key == "" || r.isGreeting(key) {
		uc.say(ctx, r.cfg.Messages.Greeting)
		return assistant.Reply{Message: r.cfg.Messages.Greeting}, nil
	}
	if r.isNews(key) {
		return uc.fetchNews(ctx, raw, r)
	}
	if m := wikipediaPattern.FindStringSubmatch(clean); m != nil {
		return uc.searchWikipedia(ctx, raw, strings.TrimSpace(m[1]), r)
	}

	in := uc.extractor.Extract(clean)
	res := uc.resolve(clean, raw, in, r)
	if !res.Found {
		uc.l.Debugf(ctx, "internal.assistant.usecase.route: %v for %q, asking the language model", assistant.ErrNoResolutionFound, clean)
		return uc.complete(ctx, raw, in, r)
	}

	uc.l.Infof(ctx, "internal.assistant.usecase.route: %s with confidence %.2f", res.Source, res.Confidence)
	switch res.Source {
	case model.SourceSimilarMatch:
		uc.say(ctx, fmt.Sprintf(r.cfg.Messages.SimilarHint, res.OriginalCommand))
	case model.SourceGenerated:
		uc.say(ctx, r.cfg.Messages.GeneratedHint)
	}

	if r.dangerous(res.Actions) {
		return uc.hold(ctx, model.PendingExecution{
			ID:              uc.newID(),
			Actions:         res.Actions,
			OriginalCommand: raw,
			Intent:          in,
			Confidence:      res.Confidence,
			Source:          res.Source,
			CreatedAt:       uc.now(),
		}, fmt.Sprintf(assistant.MsgRisky, strings.Join(res.Actions, ", ")))
	}

	return uc.execute(ctx, raw, in, res.Actions, res.Confidence, res.Source)
}

// resolve looks for actions in priority order: exact match, similar match,
// then a synthesized command.
func (uc *implUseCase) resolve(clean, raw string, in model.Intent, r *rules) model.Resolution {
	for _, cmd := range []string{clean, raw} {
		if p, ok := uc.store.LookupExact(cmd); ok {
			return model.Resolution{
				Found:           true,
				Actions:         p.Actions,
				Confidence:      1,
				Source:          model.SourceExactMatch,
				OriginalCommand: p.SourceCommand,
			}
		}
	}

	for _, best := range uc.store.LookupSimilar(in) {
		if fixedPhrase(best.Pattern.Actions) {
			continue
		}
		return model.Resolution{
			Found:           true,
			Actions:         best.Pattern.Actions,
			Confidence:      best.Similarity,
			Source:          model.SourceSimilarMatch,
			OriginalCommand: best.Pattern.SourceCommand,
		}
	}

	if in.Confidence > r.cfg.MinSynthConfidence {
		if actions := uc.synth.Synthesize(in); len(actions) > 0 {
			return model.Resolution{
				Found:           true,
				Actions:         actions,
				Confidence:      in.Confidence,
				Source:          model.SourceGenerated,
				OriginalCommand: clean,
			}
		}
	}

	return model.Resolution{}
}

// fixedPhrase reports actions learned from a news or Wikipedia phrase.
// Those replay on an exact match only: their intent says nothing about the
// words that triggered them.
func fixedPhrase(actions []string) bool {
	for _, a := range actions {
		if a == executor.ActionFetchNews || strings.HasPrefix(a, executor.ActionSearchWikipedia) {
			return true
		}
	}
	return false
}

func (uc *implUseCase) fetchNews(ctx context.Context, raw string, r *rules) (assistant.Reply, error) {
	msg := r.cfg.Messages.NewsUnavailable
	if uc.news == nil {
		return uc.fail(ctx, assistant.ErrCollaboratorUnavailable, msg)
	}

	article, err := uc.news.TopHeadline(ctx)
	if errors.Is(err, newsapi.ErrNoArticles) {
		return uc.fail(ctx, fmt.Errorf("%w: %w", assistant.ErrNoResults, err), msg)
	}
	if err != nil {
		uc.l.Warnf(ctx, "internal.assistant.usecase.fetchNews: %v", err)
		return uc.fail(ctx, fmt.Errorf("%w: %w", assistant.ErrCollaboratorUnavailable, err), msg)
	}

	uc.say(ctx, article.Title)
	uc.learn(ctx, raw, uc.extractor.Extract(raw), []string{executor.ActionFetchNews})
	return assistant.Reply{Message: article.Title}, nil
}

func (uc *implUseCase) searchWikipedia(ctx context.Context, raw, query string, r *rules) (assistant.Reply, error) {
	msg := r.cfg.Messages.WikipediaUnavailable
	if uc.wiki == nil {
		return uc.fail(ctx, assistant.ErrCollaboratorUnavailable, msg)
	}

	summary, err := uc.wiki.Summary(ctx, query)
	if errors.Is(err, wikipedia.ErrNotFound) || (err == nil && summary.Content == "") {
		return uc.fail(ctx, fmt.Errorf("%w: wikipedia %q", assistant.ErrNoResults, query), msg)
	}
	if err != nil {
		uc.l.Warnf(ctx, "internal.assistant.usecase.searchWikipedia: %v", err)
		return uc.fail(ctx, fmt.Errorf("%w: %w", assistant.ErrCollaboratorUnavailable, err), msg)
	}

	uc.say(ctx, summary.Content)
	uc.learn(ctx, raw, uc.extractor.Extract(raw), []string{executor.ActionSearchWikipedia + query})
	return assistant.Reply{Message: summary.Content}, nil
}

// complete asks the language model. A COMMAND line becomes a pending
// suggestion; anything else is the conversational answer.
func (uc *implUseCase) complete(ctx context.Context, raw string, in model.Intent, r *rules) (assistant.Reply, error) {
	msg := r.cfg.Messages.LLMUnavailable
	if uc.llm == nil {
		return uc.fail(ctx, assistant.ErrCollaboratorUnavailable, msg)
	}

	text, err := uc.llm.Complete(ctx, fmt.Sprintf(assistant.PromptCommand, raw))
	if err != nil {
		uc.l.Warnf(ctx, "internal.assistant.usecase.complete: %v", err)
		return uc.fail(ctx, fmt.Errorf("%w: %w", assistant.ErrCollaboratorUnavailable, err), msg)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return uc.fail(ctx, fmt.Errorf("%w: empty completion", assistant.ErrCollaboratorUnavailable), msg)
	}

	command, explanation, ok := parseSuggestion(text)
	if !ok {
		uc.say(ctx, text)
		return assistant.Reply{Message: text, Source: model.SourceLLM}, nil
	}
	if explanation == "" {
		explanation = assistant.DefaultExplanation
	}

	return uc.hold(ctx, model.PendingExecution{
		ID:              uc.newID(),
		Actions:         []string{command},
		OriginalCommand: raw,
		Intent:          in,
		Confidence:      assistant.LLMConfidence,
		IsGenerated:     true,
		Explanation:     explanation,
		Source:          model.SourceLLM,
		CreatedAt:       uc.now(),
	}, fmt.Sprintf(assistant.MsgLLMSuggested, command, explanation))
}

func (uc *implUseCase) fail(ctx context.Context, err error, msg string) (assistant.Reply, error) {
	uc.say(ctx, msg)
	return assistant.Reply{}, &assistant.ReplyError{Err: err, Message: msg}
}

func (uc *implUseCase) say(ctx context.Context, text string) {
	if text == "" {
		return
	}
	uc.l.Debugf(ctx, "internal.assistant.usecase.say: %s", text)
	uc.speaker.SpeakAsync(text)
}
