package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"jarvis-assistant/pkg/log"

	_ "modernc.org/sqlite"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New opens (or creates) the SQLite database at dbPath and migrates it.
func New(dbPath string, l log.Logger) (*implRepository, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	r := &implRepository{db: db, l: l}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

// Close releases the database handle.
func (r *implRepository) Close() error {
	return r.db.Close()
}

func (r *implRepository) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS patterns (
			command    TEXT PRIMARY KEY,
			seq        INTEGER NOT NULL,
			intent_key TEXT NOT NULL,
			intent     TEXT NOT NULL,
			actions    TEXT NOT NULL,
			success    INTEGER NOT NULL,
			timestamp  TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_patterns_intent_key ON patterns(intent_key)`,
		`CREATE TABLE IF NOT EXISTS history (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			command   TEXT NOT NULL,
			actions   TEXT NOT NULL,
			timestamp TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
