package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jarvis-assistant/internal/intent"
	"jarvis-assistant/internal/knowledge"
	"jarvis-assistant/pkg/log"
)

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	r, err := New(filepath.Join(t.TempDir(), "jarvis.db"), log.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRepository_EmptyLoad(t *testing.T) {
	snap, err := newTestRepo(t).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Patterns)
	assert.Empty(t, snap.History)
}

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	e := intent.New()

	src := knowledge.New(knowledge.Options{}, log.NewNop())
	cmds := []string{"open terminal", "take a screenshot", "search for cats on youtube"}
	for _, c := range cmds {
		src.RecordSuccess(c, e.Extract(c), []string{"action for " + c})
	}
	src.RecordSuccess("open terminal", e.Extract("open terminal"), []string{"xterm"})

	require.NoError(t, r.Save(ctx, src.Snapshot()))

	snap, err := r.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Patterns, 3)
	require.Len(t, snap.History, 4)
	assert.Empty(t, snap.Groups)

	dst := knowledge.New(knowledge.Options{}, log.NewNop())
	report := dst.Restore(ctx, snap)
	assert.Equal(t, 3, report.Reindexed)
	assert.Equal(t, src.Stats(), dst.Stats())

	for _, c := range cmds {
		want, _ := src.LookupExact(c)
		got, ok := dst.LookupExact(c)
		require.True(t, ok)
		assert.Equal(t, want.Actions, got.Actions)
		assert.Equal(t, want.Seq, got.Seq)
		assert.Equal(t, want.Intent.Key(), got.Intent.Key())
	}
}

func TestRepository_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	src := knowledge.New(knowledge.Options{}, log.NewNop())
	src.RecordSuccess("open terminal", intent.New().Extract("open terminal"), []string{"xterm"})
	require.NoError(t, r.Save(ctx, src.Snapshot()))
	require.NoError(t, r.Save(ctx, knowledge.Snapshot{}))

	snap, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Patterns)
}
