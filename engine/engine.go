package engine

import (
	"sync"
	"sync/atomic"

	scriptruntime "github.com/wippyai/script-runtime"
	"github.com/wippyai/script-runtime/errors"
)

// Built-in engine kinds
const (
	JS  = "js"
	Lua = "lua"
)

// Factory constructs a fresh engine instance
type Factory func() (scriptruntime.Engine, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)

	platformMu   sync.Mutex
	platformDone atomic.Bool
)

// InitPlatform performs the process-wide one-time engine setup, registering
// the built-in factories. Safe to call from any goroutine and any number of
// times; only the first call does work.
func InitPlatform() error {
	if platformDone.Load() {
		return nil
	}

	platformMu.Lock()
	defer platformMu.Unlock()

	if platformDone.Load() {
		return nil
	}

	builtins := map[string]Factory{
		JS:  func() (scriptruntime.Engine, error) { return NewJS(), nil },
		Lua: func() (scriptruntime.Engine, error) { return NewLua(), nil },
	}
	for kind, factory := range builtins {
		if err := Register(kind, factory); err != nil {
			return errors.Initialization("register built-in engines", err)
		}
	}

	platformDone.Store(true)
	return nil
}

// Register makes an engine factory available under kind. Registering an
// already registered kind is an error; pick a fresh name instead of
// shadowing a built-in.
func Register(kind string, factory Factory) error {
	if kind == "" {
		return errors.InvalidInput(errors.PhaseInit, "engine kind must not be empty")
	}
	if factory == nil {
		return errors.InvalidInput(errors.PhaseInit, "engine factory must not be nil")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[kind]; exists {
		return errors.InvalidInput(errors.PhaseInit, "engine kind already registered: "+kind)
	}
	registry[kind] = factory
	debugf("registered engine %q", kind)
	return nil
}

// New constructs an engine of the given kind. The returned instance is NOT
// safe for concurrent use; confine it to a single goroutine.
func New(kind string) (scriptruntime.Engine, error) {
	if err := InitPlatform(); err != nil {
		return nil, err
	}

	registryMu.RLock()
	factory, ok := registry[kind]
	registryMu.RUnlock()

	if !ok {
		return nil, errors.NotFound(errors.PhaseInit, "engine", kind)
	}

	eng, err := factory()
	if err != nil {
		return nil, errors.New(errors.PhaseInit, errors.KindInitialization).
			Engine(kind).
			Detail("construct engine").
			Cause(err).
			Build()
	}
	return eng, nil
}

// Kinds returns the registered engine kinds in no particular order.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]string, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	return kinds
}
