package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jarvis-assistant/config"
	"jarvis-assistant/internal/knowledge/repository"
	"jarvis-assistant/pkg/log"
)

func TestOpenRepository(t *testing.T) {
	dir := t.TempDir()

	for _, driver := range []string{"file", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			repo, closeRepo, err := openRepository(config.KnowledgeConfig{
				Driver: driver,
				Path:   filepath.Join(dir, "knowledge."+driver),
			}, log.NewNop())
			require.NoError(t, err)
			require.NotNil(t, repo)
			assert.NoError(t, closeRepo())
		})
	}

	t.Run("unknown driver", func(t *testing.T) {
		_, _, err := openRepository(config.KnowledgeConfig{Driver: "redis", Path: dir}, log.NewNop())
		assert.ErrorIs(t, err, repository.ErrUnknownDriver)
	})
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, duration("5s", time.Second))
	assert.Equal(t, time.Second, duration("", time.Second))
	assert.Equal(t, time.Second, duration("soon", time.Second))
	assert.Equal(t, time.Second, duration("-2s", time.Second))
}
