package repository

import (
	"context"

	"jarvis-assistant/internal/knowledge"
)

// Repository persists knowledge store snapshots.
//
//go:generate mockery --name Repository
type Repository interface {
	// Load returns an empty snapshot when nothing has been saved yet.
	Load(ctx context.Context) (knowledge.Snapshot, error)
	Save(ctx context.Context, snap knowledge.Snapshot) error
}
