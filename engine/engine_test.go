package engine

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	scriptruntime "github.com/wippyai/script-runtime"
	rterrors "github.com/wippyai/script-runtime/errors"
)

func TestNew_BuiltinKinds(t *testing.T) {
	tests := []struct {
		kind   string
		source string
	}{
		{JS, "1 + 1"},
		{Lua, "return 1 + 1"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			eng, err := New(tt.kind)
			if err != nil {
				t.Fatalf("new %s engine: %v", tt.kind, err)
			}
			defer eng.Close()

			if _, err := eng.Eval(tt.source); err != nil {
				t.Errorf("eval: %v", err)
			}
		})
	}
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New("perl")
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if !errors.Is(err, rterrors.NotFound(rterrors.PhaseInit, "engine", "perl")) {
		t.Errorf("error = %v, want not_found in init phase", err)
	}
}

type stubEngine struct{}

func (s *stubEngine) Eval(string) (string, error) { return "", nil }
func (s *stubEngine) Close() error                { return nil }

func TestRegister(t *testing.T) {
	t.Run("custom kind", func(t *testing.T) {
		// Unique per run; the registry is process-wide.
		kind := fmt.Sprintf("stub-custom-%d", time.Now().UnixNano())
		err := Register(kind, func() (scriptruntime.Engine, error) {
			return &stubEngine{}, nil
		})
		if err != nil {
			t.Fatalf("register: %v", err)
		}

		eng, err := New(kind)
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		defer eng.Close()
	})

	t.Run("empty kind", func(t *testing.T) {
		if err := Register("", func() (scriptruntime.Engine, error) { return &stubEngine{}, nil }); err == nil {
			t.Error("expected error for empty kind")
		}
	})

	t.Run("nil factory", func(t *testing.T) {
		if err := Register("stub-nil", nil); err == nil {
			t.Error("expected error for nil factory")
		}
	})

	t.Run("duplicate kind", func(t *testing.T) {
		if err := InitPlatform(); err != nil {
			t.Fatalf("init platform: %v", err)
		}
		if err := Register(JS, func() (scriptruntime.Engine, error) { return &stubEngine{}, nil }); err == nil {
			t.Error("expected error for duplicate kind")
		}
	})
}

func TestInitPlatform_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 10)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := InitPlatform(); err != nil {
				errs <- err
				return
			}
			eng, err := New(JS)
			if err != nil {
				errs <- err
				return
			}
			eng.Close()
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent init: %v", err)
	}
}

func TestKinds(t *testing.T) {
	if err := InitPlatform(); err != nil {
		t.Fatalf("init platform: %v", err)
	}

	have := make(map[string]bool)
	for _, kind := range Kinds() {
		have[kind] = true
	}
	if !have[JS] || !have[Lua] {
		t.Errorf("kinds = %v, want js and lua present", Kinds())
	}
}
