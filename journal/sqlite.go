package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const createEntriesTable = `
CREATE TABLE IF NOT EXISTS entries (
    id          TEXT PRIMARY KEY,
    engine      TEXT NOT NULL,
    script      TEXT NOT NULL,
    outcome     TEXT NOT NULL,
    diagnostic  TEXT,
    output      TEXT,
    duration_ms INTEGER,
    created_at  DATETIME NOT NULL
)`

// Compile-time interface satisfaction check.
var _ Recorder = (*SQLiteRecorder)(nil)

// SQLiteRecorder implements Recorder using SQLite.
type SQLiteRecorder struct {
	db *sql.DB
}

// NewSQLiteRecorder opens the SQLite database at dbPath and runs migrations.
// Use ":memory:" for an ephemeral journal.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if _, err := db.Exec(createEntriesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create entries table: %w", err)
	}

	return &SQLiteRecorder{db: db}, nil
}

// Close closes the underlying database connection.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

// Record inserts one execution entry.
func (r *SQLiteRecorder) Record(ctx context.Context, e Entry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO entries (
			id, engine, script, outcome, diagnostic, output,
			duration_ms, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Engine, e.Script, e.Outcome, e.Diagnostic, e.Output,
		e.DurationMS, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// Get retrieves an entry by call ID.
func (r *SQLiteRecorder) Get(ctx context.Context, id string) (*Entry, error) {
	e := &Entry{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, engine, script, outcome, diagnostic, output,
			duration_ms, created_at
		FROM entries WHERE id = ?`, id,
	).Scan(&e.ID, &e.Engine, &e.Script, &e.Outcome, &e.Diagnostic,
		&e.Output, &e.DurationMS, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select entry: %w", err)
	}
	return e, nil
}

// Recent returns the latest entries, newest first. A non-positive limit
// defaults to 20.
func (r *SQLiteRecorder) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	// ULIDs sort lexicographically by creation time, so id breaks ties
	// between entries sharing a created_at.
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, engine, script, outcome, diagnostic, output,
			duration_ms, created_at
		FROM entries ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.ID, &e.Engine, &e.Script, &e.Outcome,
			&e.Diagnostic, &e.Output, &e.DurationMS, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
