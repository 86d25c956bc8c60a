package pool

import (
	"context"
	"sync"

	"github.com/wippyai/script-runtime/errors"
	"github.com/wippyai/script-runtime/runtime"
)

// Pool holds a fixed number of runtimes and hands each out to one caller at
// a time. All instances are built from the same Config, so they run the same
// engine kind; interpreter state still never crosses instance boundaries.
//
// Safe for concurrent use.
type Pool struct {
	idle chan *runtime.Runtime
	size int

	mu     sync.Mutex
	closed bool
}

// New builds size independent runtimes and fills the pool with them. If any
// instance fails to start, the ones already started are shut down and the
// construction error is returned.
func New(ctx context.Context, size int, cfg *runtime.Config) (*Pool, error) {
	if size < 1 {
		return nil, errors.InvalidInput(errors.PhaseInit, "pool size must be at least 1")
	}

	p := &Pool{
		idle: make(chan *runtime.Runtime, size),
		size: size,
	}

	for i := 0; i < size; i++ {
		rt, err := runtime.NewWithConfig(ctx, cfg)
		if err != nil {
			p.Close(ctx)
			return nil, err
		}
		p.idle <- rt
	}

	return p, nil
}

// Size returns the number of instances the pool was built with.
func (p *Pool) Size() int {
	return p.size
}

// Acquire blocks until an instance is idle or ctx is done. The caller owns
// the instance until handing it back with Release.
func (p *Pool) Acquire(ctx context.Context) (*runtime.Runtime, error) {
	select {
	case rt, ok := <-p.idle:
		if !ok {
			return nil, errors.New(errors.PhaseSubmit, errors.KindChannelClosed).
				Detail("pool is closed").
				Build()
		}
		return rt, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release hands an acquired instance back to the pool. If the pool was
// closed while the instance was out, the instance is shut down instead of
// being returned.
func (p *Pool) Release(ctx context.Context, rt *runtime.Runtime) error {
	if rt == nil {
		return nil
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return rt.Close(ctx)
	}
	// Capacity equals the instance count, so this send cannot block.
	p.idle <- rt
	p.mu.Unlock()
	return nil
}

// Execute acquires an instance, runs the script on it, and releases it.
// Use Acquire and Release directly when consecutive scripts must share
// interpreter state.
func (p *Pool) Execute(ctx context.Context, script string) (*runtime.Result, error) {
	rt, err := p.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	res, execErr := rt.Execute(ctx, script)
	if relErr := p.Release(ctx, rt); relErr != nil && execErr == nil {
		execErr = relErr
	}
	return res, execErr
}

// Close shuts down every idle instance and marks the pool closed. Instances
// checked out at the time of the call are shut down when released. Later
// Acquire calls fail. Close is idempotent.
func (p *Pool) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.idle)
	p.mu.Unlock()

	var firstErr error
	for rt := range p.idle {
		if err := rt.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
