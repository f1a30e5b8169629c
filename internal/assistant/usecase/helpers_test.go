package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"jarvis-assistant/config"
	"jarvis-assistant/internal/executor"
	"jarvis-assistant/internal/intent"
	"jarvis-assistant/internal/knowledge"
	"jarvis-assistant/internal/synth"
	"jarvis-assistant/pkg/log"
	"jarvis-assistant/pkg/newsapi"
	"jarvis-assistant/pkg/wikipedia"
)

type fakeSpeaker struct {
	mu     sync.Mutex
	spoken []string
}

func (f *fakeSpeaker) Speak(_ context.Context, text string) error {
	f.SpeakAsync(text)
	return nil
}

func (f *fakeSpeaker) SpeakAsync(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, text)
}

func (f *fakeSpeaker) Engine() string { return "fake" }

func (f *fakeSpeaker) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.spoken) == 0 {
		return ""
	}
	return f.spoken[len(f.spoken)-1]
}

type fakeExecutor struct {
	mu       sync.Mutex
	runs     [][]string
	launches int
	output   map[string]string
}

func (f *fakeExecutor) Launch(ctx context.Context, actions []string) executor.Result {
	f.mu.Lock()
	f.launches++
	f.mu.Unlock()
	return f.Execute(ctx, actions)
}

func (f *fakeExecutor) Execute(_ context.Context, actions []string) executor.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, actions)
	res := executor.Result{}
	for _, a := range actions {
		out, ok := f.output[a]
		if !ok {
			out = executor.MsgCommandSucceeded
		}
		res.Lines = append(res.Lines, out)
	}
	return res
}

func (f *fakeExecutor) executed() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]string(nil), f.runs...)
}

type fakeCompleter struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type fakeNews struct {
	title string
	err   error
}

func (f fakeNews) TopHeadlines(ctx context.Context) ([]newsapi.Article, error) {
	a, err := f.TopHeadline(ctx)
	return []newsapi.Article{a}, err
}

func (f fakeNews) TopHeadline(context.Context) (newsapi.Article, error) {
	return newsapi.Article{Title: f.title}, f.err
}

type fakeWiki struct {
	content string
	err     error
}

func (f fakeWiki) Summary(_ context.Context, query string) (wikipedia.Summary, error) {
	return wikipedia.Summary{Title: query, Content: f.content}, f.err
}

type fakeRepo struct {
	mu    sync.Mutex
	saves int
	err   error
}

func (f *fakeRepo) Load(context.Context) (knowledge.Snapshot, error) {
	return knowledge.Snapshot{}, nil
}

func (f *fakeRepo) Save(context.Context, knowledge.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	return f.err
}

var errUpstream = errors.New("upstream 503")

type testDeps struct {
	store   *knowledge.Store
	exec    *fakeExecutor
	llm     *fakeCompleter
	speaker *fakeSpeaker
	repo    *fakeRepo
}

func testRules() config.AssistantConfig {
	return config.AssistantConfig{
		MinSynthConfidence: 0.5,
		MaxSpokenLength:    100,
		AffirmativeTokens:  []string{"yes", "sure", "proceed"},
		NegativeTokens:     []string{"no", "cancel"},
		FillerWords:        []string{"please", "now", "can you", "kindly", "hey jarvis", "jarvis", "sure"},
		DangerKeywords:     []string{"rm ", "shutdown", "reboot", "sudo", "chmod 777", "dd if="},
		GreetingPhrases:    []string{"hey jarvis", "hello", "hi", "good morning", "good evening"},
		NewsPhrases:        []string{"news", "get news", "tell me news", "what's the news"},
		Messages: config.MessagesConfig{
			Greeting:             "Hello, I am JARVIS. How can I help you?",
			Executing:            "Executing command.",
			Cancelled:            "Command cancelled.",
			NewsUnavailable:      "Sorry, I could not fetch the news at this moment.",
			WikipediaUnavailable: "Sorry, I could not find any results on Wikipedia.",
			LLMUnavailable:       "I'm not sure how to help with that. Can you try rephrasing?",
			ExecutionFailed:      "Sorry, I couldn't execute that command.",
			NothingPending:       "No pending command to execute.",
			ConfirmationRequired: "A command is waiting for confirmation. Say 'yes' or 'no'.",
			LongOutput:           "Commands executed successfully",
			SimilarHint:          "I think you want something similar to \"%s\". Let me try that.",
			GeneratedHint:        "I'll try to execute that based on what I understand.",
		},
	}
}

func newTestUseCase(t *testing.T, cfg config.AssistantConfig, news newsapi.INewsAPI, wiki wikipedia.IWikipedia) (*implUseCase, testDeps) {
	t.Helper()
	d := testDeps{
		store:   knowledge.New(knowledge.Options{MaxHistory: 1000}, log.NewNop()),
		exec:    &fakeExecutor{output: map[string]string{}},
		llm:     &fakeCompleter{},
		speaker: &fakeSpeaker{},
		repo:    &fakeRepo{},
	}
	s := synth.New(synth.Config{
		ScreenshotDir: "/home/tony/Pictures",
		Now:           func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) },
	})
	uc := New(log.NewNop(), intent.New(), s, d.store, d.repo, d.exec, news, wiki, d.llm, d.speaker, cfg)

	var n int
	var mu sync.Mutex
	uc.newID = func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return "pending-" + strings.Repeat("x", n)
	}
	return uc, d
}
