package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jarvis-assistant/internal/knowledge"
	"jarvis-assistant/internal/knowledge/repository"
	"jarvis-assistant/internal/model"
)

var _ repository.Repository = (*implRepository)(nil)

// Load reads all patterns and history. Groups are rebuilt from each
// pattern's intent key by the store.
func (r *implRepository) Load(ctx context.Context) (knowledge.Snapshot, error) {
	var snap knowledge.Snapshot

	rows, err := r.db.QueryContext(ctx,
		`SELECT command, seq, intent, actions, success, timestamp FROM patterns ORDER BY seq`)
	if err != nil {
		return snap, fmt.Errorf("query patterns: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p                  model.Pattern
			intentRaw, actsRaw string
			success            int
			ts                 string
		)
		if err := rows.Scan(&p.SourceCommand, &p.Seq, &intentRaw, &actsRaw, &success, &ts); err != nil {
			return snap, fmt.Errorf("scan pattern: %w", err)
		}
		if err := json.Unmarshal([]byte(intentRaw), &p.Intent); err != nil {
			return snap, fmt.Errorf("%w: intent of %q: %v", repository.ErrCorruptData, p.SourceCommand, err)
		}
		if err := json.Unmarshal([]byte(actsRaw), &p.Actions); err != nil {
			return snap, fmt.Errorf("%w: actions of %q: %v", repository.ErrCorruptData, p.SourceCommand, err)
		}
		p.Success = success != 0
		p.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		snap.Patterns = append(snap.Patterns, p)
	}
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("iterate patterns: %w", err)
	}

	hrows, err := r.db.QueryContext(ctx, `SELECT command, actions, timestamp FROM history ORDER BY id`)
	if err != nil {
		return snap, fmt.Errorf("query history: %w", err)
	}
	defer hrows.Close()

	for hrows.Next() {
		var (
			h           model.HistoryEntry
			actsRaw, ts string
		)
		if err := hrows.Scan(&h.Command, &actsRaw, &ts); err != nil {
			return snap, fmt.Errorf("scan history: %w", err)
		}
		if err := json.Unmarshal([]byte(actsRaw), &h.Actions); err != nil {
			return snap, fmt.Errorf("%w: history actions: %v", repository.ErrCorruptData, err)
		}
		h.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		snap.History = append(snap.History, h)
	}
	if err := hrows.Err(); err != nil {
		return snap, fmt.Errorf("iterate history: %w", err)
	}

	return snap, nil
}

// Save replaces the stored state with snap in one transaction.
func (r *implRepository) Save(ctx context.Context, snap knowledge.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM patterns`); err != nil {
		return fmt.Errorf("clear patterns: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	for _, p := range snap.Patterns {
		intentRaw, err := json.Marshal(p.Intent)
		if err != nil {
			return fmt.Errorf("marshal intent: %w", err)
		}
		actsRaw, err := json.Marshal(p.Actions)
		if err != nil {
			return fmt.Errorf("marshal actions: %w", err)
		}
		success := 0
		if p.Success {
			success = 1
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO patterns (command, seq, intent_key, intent, actions, success, timestamp)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.SourceCommand, p.Seq, p.Intent.Key(), string(intentRaw), string(actsRaw), success,
			p.Timestamp.UTC().Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("insert pattern %q: %w", p.SourceCommand, err)
		}
	}

	for _, h := range snap.History {
		actsRaw, err := json.Marshal(h.Actions)
		if err != nil {
			return fmt.Errorf("marshal actions: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO history (command, actions, timestamp) VALUES (?, ?, ?)`,
			h.Command, string(actsRaw), h.Timestamp.UTC().Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("insert history: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	r.l.Debugf(ctx, "knowledge saved to sqlite: %d patterns, %d history", len(snap.Patterns), len(snap.History))
	return nil
}
