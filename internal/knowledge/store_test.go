package knowledge

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jarvis-assistant/internal/intent"
	"jarvis-assistant/internal/model"
	"jarvis-assistant/pkg/log"
)

func newTestStore(maxHistory int) *Store {
	return New(Options{MaxHistory: maxHistory}, log.NewNop())
}

func TestStore_RecordAndLookupExact(t *testing.T) {
	s := newTestStore(0)
	e := intent.New()

	in := e.Extract("open spotify")
	s.RecordSuccess("open spotify", in, []string{"spotify"})

	p, ok := s.LookupExact("  Open   SPOTIFY ")
	require.True(t, ok)
	assert.Equal(t, []string{"spotify"}, p.Actions)
	assert.Equal(t, "open spotify", p.SourceCommand)
	assert.True(t, p.Success)

	_, ok = s.LookupExact("open slack")
	assert.False(t, ok)
}

func TestStore_RecordTwiceIsIdempotent(t *testing.T) {
	s := newTestStore(0)
	in := intent.New().Extract("open spotify")

	first := s.RecordSuccess("open spotify", in, []string{"spotify"})
	second := s.RecordSuccess("open spotify", in, []string{"spotify"})

	assert.Equal(t, first.Seq, second.Seq)
	stats := s.Stats()
	assert.Equal(t, 1, stats.PatternCount)
	assert.Equal(t, 2, stats.HistoryCount)
	assert.Equal(t, 1, stats.GroupCount)

	snap := s.Snapshot()
	require.Len(t, snap.Groups, 1)
	assert.Len(t, snap.Groups[0].Patterns, 1)
}

func TestStore_RecordMovesGroupWhenIntentChanges(t *testing.T) {
	s := newTestStore(0)

	s.RecordSuccess("do it", model.Intent{Action: model.ActionPtr(model.ActionOpen)}, []string{"a"})
	s.RecordSuccess("do it", model.Intent{Action: model.ActionPtr(model.ActionRun)}, []string{"b"})

	snap := s.Snapshot()
	require.Len(t, snap.Groups, 1)
	assert.Equal(t, "run_null", snap.Groups[0].Key)
	assert.Equal(t, []string{"b"}, snap.Groups[0].Patterns[0].Actions)
}

func TestStore_LookupSimilar(t *testing.T) {
	s := newTestStore(0)
	e := intent.New()

	s.RecordSuccess("launch terminal", e.Extract("launch terminal"), []string{"xterm"})
	s.RecordSuccess("open the terminal now", e.Extract("open the terminal now"), []string{"gnome-terminal"})
	s.RecordSuccess("create a folder named x", e.Extract("create a folder named x"), []string{"mkdir x"})

	matches := s.LookupSimilar(e.Extract("open terminal"))
	require.Len(t, matches, 2)
	assert.Equal(t, 0.8, matches[0].Similarity)
	assert.Equal(t, 0.8, matches[1].Similarity)
	// equal scores keep insertion order
	assert.Equal(t, "launch terminal", matches[0].Pattern.SourceCommand)
	assert.Equal(t, "open the terminal now", matches[1].Pattern.SourceCommand)
}

func TestStore_LookupSimilar_ThresholdIsExclusive(t *testing.T) {
	s := newTestStore(0)

	// action only: 0.5, below threshold
	s.RecordSuccess("open a", model.Intent{Action: model.ActionPtr(model.ActionOpen), Target: model.TargetPtr(model.TargetFile)}, []string{"a"})

	matches := s.LookupSimilar(model.Intent{Action: model.ActionPtr(model.ActionOpen), Target: model.TargetPtr(model.TargetFolder)})
	assert.Empty(t, matches)
}

func TestSimilarity(t *testing.T) {
	open := model.ActionPtr(model.ActionOpen)
	term := model.TargetPtr(model.TargetTerminal)
	named := model.Param{Role: model.RoleNamed, Value: "x"}
	in := model.Param{Role: model.RoleIn, Value: "y"}

	tcs := map[string]struct {
		a, b model.Intent
		want float64
	}{
		"both nil":          {model.Intent{}, model.Intent{}, 0.8},
		"action and target": {model.Intent{Action: open, Target: term}, model.Intent{Action: open, Target: term}, 0.8},
		"full match":        {model.Intent{Action: open, Params: []model.Param{named}}, model.Intent{Action: open, Params: []model.Param{named}}, 1.0},
		"half params":       {model.Intent{Action: open, Params: []model.Param{named, in}}, model.Intent{Action: open, Params: []model.Param{named}}, 0.9},
		"nothing shared":    {model.Intent{Action: open}, model.Intent{Target: term}, 0},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Similarity(tc.a, tc.b))
		})
	}
}

func TestStore_HistoryCap(t *testing.T) {
	s := newTestStore(3)
	in := model.Intent{}
	for i := 0; i < 5; i++ {
		s.RecordSuccess(fmt.Sprintf("cmd %d", i), in, []string{"x"})
	}

	snap := s.Snapshot()
	require.Len(t, snap.History, 3)
	assert.Equal(t, "cmd 2", snap.History[0].Command)
	assert.Equal(t, "cmd 4", snap.History[2].Command)
	assert.Equal(t, 5, s.Stats().PatternCount)
}

func TestStore_SnapshotRestoreRoundTrip(t *testing.T) {
	src := newTestStore(0)
	e := intent.New()
	cmds := []string{"open terminal", "launch the terminal", "create a folder named reports in Documents", "take a screenshot"}
	for i, c := range cmds {
		src.RecordSuccess(c, e.Extract(c), []string{fmt.Sprintf("action-%d", i)})
	}

	dst := newTestStore(0)
	report := dst.Restore(context.Background(), src.Snapshot())
	assert.Equal(t, RestoreReport{Patterns: len(cmds)}, report)
	assert.Equal(t, src.Stats(), dst.Stats())

	for _, c := range cmds {
		want, _ := src.LookupExact(c)
		got, ok := dst.LookupExact(c)
		require.True(t, ok)
		assert.Equal(t, want.Actions, got.Actions)
		assert.Equal(t, src.LookupSimilar(e.Extract(c)), dst.LookupSimilar(e.Extract(c)))
	}

	// new records continue after the restored sequence
	p := dst.RecordSuccess("open firefox", e.Extract("open firefox"), []string{"firefox"})
	assert.Equal(t, uint64(len(cmds)+1), p.Seq)
}

func TestStore_RestoreRepairsInconsistencies(t *testing.T) {
	e := intent.New()
	term := model.Pattern{SourceCommand: "open terminal", Intent: e.Extract("open terminal"), Actions: []string{"xterm"}, Seq: 1}
	shot := model.Pattern{SourceCommand: "take a screenshot", Intent: e.Extract("take a screenshot"), Actions: []string{"scrot"}, Seq: 2}
	ghost := model.Pattern{SourceCommand: "ghost", Intent: model.Intent{}, Actions: []string{"boo"}}

	snap := Snapshot{
		Patterns: []model.Pattern{term, shot},
		Groups: []Group{
			{Key: "open_terminal", Patterns: []model.Pattern{term}},
			{Key: "null_null", Patterns: []model.Pattern{ghost}},
		},
	}

	s := newTestStore(0)
	report := s.Restore(context.Background(), snap)

	assert.Equal(t, 1, report.Dropped)
	assert.Equal(t, 1, report.Reindexed)
	assert.Equal(t, 2, s.Stats().GroupCount)

	got := s.Snapshot()
	for _, g := range got.Groups {
		for _, p := range g.Patterns {
			assert.Equal(t, g.Key, p.Intent.Key())
		}
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := newTestStore(100)
	e := intent.New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cmd := fmt.Sprintf("open terminal %d", i%5)
			s.RecordSuccess(cmd, e.Extract(cmd), []string{"xterm"})
			s.LookupExact(cmd)
			s.LookupSimilar(e.Extract(cmd))
			s.Stats()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, s.Stats().PatternCount)
	assert.Equal(t, 20, s.Stats().HistoryCount)
}
