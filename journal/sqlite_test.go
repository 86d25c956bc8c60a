package journal

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(":memory:")
	if err != nil {
		t.Fatalf("create recorder: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func makeTestEntry(id string) Entry {
	return Entry{
		ID:         id,
		Engine:     "js",
		Script:     "1 + 1",
		Outcome:    "executed",
		DurationMS: 3,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestRecordAndGet(t *testing.T) {
	r := newTestRecorder(t)
	ctx := context.Background()

	e := makeTestEntry("01J9TEST0001")
	e.Output = "84\n"
	if err := r.Record(ctx, e); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := r.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Engine != e.Engine {
		t.Errorf("engine = %q, want %q", got.Engine, e.Engine)
	}
	if got.Script != e.Script {
		t.Errorf("script = %q, want %q", got.Script, e.Script)
	}
	if got.Outcome != e.Outcome {
		t.Errorf("outcome = %q, want %q", got.Outcome, e.Outcome)
	}
	if got.Output != e.Output {
		t.Errorf("output = %q, want %q", got.Output, e.Output)
	}
	if got.DurationMS != e.DurationMS {
		t.Errorf("duration_ms = %d, want %d", got.DurationMS, e.DurationMS)
	}
}

func TestGetNotFound(t *testing.T) {
	r := newTestRecorder(t)

	_, err := r.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRecent(t *testing.T) {
	r := newTestRecorder(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, id := range []string{"01J9A", "01J9B", "01J9C"} {
		e := makeTestEntry(id)
		e.CreatedAt = base.Add(time.Duration(i) * time.Second)
		if err := r.Record(ctx, e); err != nil {
			t.Fatalf("record %s: %v", id, err)
		}
	}

	entries, err := r.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].ID != "01J9C" || entries[1].ID != "01J9B" {
		t.Errorf("order = %s, %s; want newest first", entries[0].ID, entries[1].ID)
	}
}

func TestRecentEmpty(t *testing.T) {
	r := newTestRecorder(t)

	entries, err := r.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len = %d, want 0 for empty journal", len(entries))
	}
}

func TestRecordFailureOutcome(t *testing.T) {
	r := newTestRecorder(t)
	ctx := context.Background()

	e := makeTestEntry("01J9ERR")
	e.Outcome = "script_error"
	e.Diagnostic = "Error: boom at <eval>:1:7"
	if err := r.Record(ctx, e); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := r.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Diagnostic != e.Diagnostic {
		t.Errorf("diagnostic = %q, want %q", got.Diagnostic, e.Diagnostic)
	}
}
