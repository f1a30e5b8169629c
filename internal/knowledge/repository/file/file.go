package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"jarvis-assistant/internal/knowledge"
	"jarvis-assistant/internal/knowledge/repository"
	"jarvis-assistant/internal/model"
)

var _ repository.Repository = (*implRepository)(nil)

// Load reads the knowledge file. A missing file is an empty snapshot.
func (r *implRepository) Load(ctx context.Context) (knowledge.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.l.Infof(ctx, "knowledge file %s not found, starting fresh", r.path)
		return knowledge.Snapshot{}, nil
	}
	if err != nil {
		return knowledge.Snapshot{}, fmt.Errorf("read %s: %w", r.path, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return knowledge.Snapshot{}, fmt.Errorf("%w: %s: %v", repository.ErrCorruptData, r.path, err)
	}

	return fromDocument(doc), nil
}

// Save writes the snapshot through a temp file and rename so readers never
// see a partial file.
func (r *implRepository) Save(ctx context.Context, snap knowledge.Snapshot) error {
	raw, err := json.MarshalIndent(toDocument(snap), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal knowledge: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmpName, err)
	}

	r.l.Debugf(ctx, "knowledge saved to %s: %d patterns", r.path, len(snap.Patterns))
	return nil
}

func toDocument(snap knowledge.Snapshot) document {
	doc := document{
		KnowledgeBase:  make([]patternEntry, 0, len(snap.Patterns)),
		CommandHistory: snap.History,
		IntentPatterns: make([]groupEntry, 0, len(snap.Groups)),
	}
	if doc.CommandHistory == nil {
		doc.CommandHistory = []model.HistoryEntry{}
	}
	for _, p := range snap.Patterns {
		doc.KnowledgeBase = append(doc.KnowledgeBase, patternEntry{Key: p.SourceCommand, Pattern: p})
	}
	for _, g := range snap.Groups {
		doc.IntentPatterns = append(doc.IntentPatterns, groupEntry{Key: g.Key, Patterns: g.Patterns})
	}
	return doc
}

func fromDocument(doc document) knowledge.Snapshot {
	snap := knowledge.Snapshot{
		Patterns: make([]model.Pattern, 0, len(doc.KnowledgeBase)),
		Groups:   make([]knowledge.Group, 0, len(doc.IntentPatterns)),
		History:  doc.CommandHistory,
	}
	for _, e := range doc.KnowledgeBase {
		p := e.Pattern
		if p.SourceCommand == "" {
			p.SourceCommand = e.Key
		}
		snap.Patterns = append(snap.Patterns, p)
	}
	for _, e := range doc.IntentPatterns {
		snap.Groups = append(snap.Groups, knowledge.Group{Key: e.Key, Patterns: e.Patterns})
	}
	return snap
}
