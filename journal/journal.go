// Package journal persists script execution history.
//
// The runtime records one Entry per executed script when a Recorder is
// configured. Recording is best effort: the runtime logs and drops failed
// writes rather than failing the caller's script.
package journal

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a journal entry is not found.
var ErrNotFound = errors.New("journal entry not found")

// Entry is one recorded script execution.
type Entry struct {
	ID         string // call identifier
	Engine     string // engine kind the script ran on
	Script     string // submitted source text
	Outcome    string // executed, script_error or worker_fault
	Diagnostic string // engine diagnostic for failed runs
	Output     string // captured console/print output
	DurationMS int64
	CreatedAt  time.Time
}

// Recorder defines the persistence operations for execution history.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
	Get(ctx context.Context, id string) (*Entry, error)
	Recent(ctx context.Context, limit int) ([]*Entry, error)
	Close() error
}
