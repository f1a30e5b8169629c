package usecase

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"jarvis-assistant/config"
	"jarvis-assistant/internal/assistant"
	"jarvis-assistant/internal/intent"
	"jarvis-assistant/internal/knowledge"
	"jarvis-assistant/internal/knowledge/repository"
	"jarvis-assistant/internal/model"
	"jarvis-assistant/internal/synth"
	"jarvis-assistant/pkg/log"
	"jarvis-assistant/pkg/newsapi"
	"jarvis-assistant/pkg/speech"
	"jarvis-assistant/pkg/wikipedia"
)

type implUseCase struct {
	l         log.Logger
	extractor *intent.Extractor
	synth     *synth.Synthesizer
	store     *knowledge.Store
	repo      repository.Repository
	exec      Executor
	news      newsapi.INewsAPI
	wiki      wikipedia.IWikipedia
	llm       Completer
	speaker   speech.ISpeaker

	rules atomic.Pointer[rules]

	// pending is the single action list waiting for a yes or no.
	mu      sync.Mutex
	pending *model.PendingExecution

	saveMu sync.Mutex

	newID func() string
	now   func() time.Time
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates the command router. repo, news, wiki and llm may be nil; the
// matching features then answer with their apology message.
func New(
	l log.Logger,
	extractor *intent.Extractor,
	synthesizer *synth.Synthesizer,
	store *knowledge.Store,
	repo repository.Repository,
	exec Executor,
	news newsapi.INewsAPI,
	wiki wikipedia.IWikipedia,
	llm Completer,
	speaker speech.ISpeaker,
	cfg config.AssistantConfig,
) *implUseCase {
	if speaker == nil {
		speaker = speech.Noop{}
	}
	uc := &implUseCase{
		l:         l,
		extractor: extractor,
		synth:     synthesizer,
		store:     store,
		repo:      repo,
		exec:      exec,
		news:      news,
		wiki:      wiki,
		llm:       llm,
		speaker:   speaker,
		newID:     uuid.NewString,
		now:       time.Now,
	}
	uc.rules.Store(compileRules(cfg))
	return uc
}
