package runtime

import (
	"context"
	"sync"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/wippyai/script-runtime/engine"
	"github.com/wippyai/script-runtime/errors"
	"github.com/wippyai/script-runtime/journal"
)

// Config holds configuration for runtime creation
type Config struct {
	// Engine selects the hosted engine kind. Defaults to engine.JS.
	Engine string

	// Logger receives worker lifecycle and per-command debug logs.
	// Defaults to a no-op logger.
	Logger *zap.Logger

	// Recorder, when set, persists every execution outcome to the journal.
	// Recording failures are logged and never affect the caller.
	Recorder journal.Recorder
}

// Runtime is the caller-facing bridge to one confined engine instance.
//
// A Runtime is safe for concurrent use: any number of goroutines may submit
// scripts, racing only for queue position. The engine itself lives inside
// the worker goroutine and is never referenced from anywhere else.
type Runtime struct {
	cfg    Config
	queue  *queue
	done   chan struct{}
	logger *zap.Logger

	mu     sync.RWMutex
	closed bool
}

// New creates a runtime with the default configuration: JavaScript engine,
// no-op logger, no journal.
func New(ctx context.Context) (*Runtime, error) {
	return NewWithConfig(ctx, nil)
}

// NewWithConfig creates a runtime with custom configuration. The engine is
// constructed inside the worker goroutine; a construction failure is
// reported here and the runtime never starts.
func NewWithConfig(ctx context.Context, cfg *Config) (*Runtime, error) {
	if err := engine.InitPlatform(); err != nil {
		return nil, err
	}

	var c Config
	if cfg != nil {
		c = *cfg
	}
	if c.Engine == "" {
		c.Engine = engine.JS
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	r := &Runtime{
		cfg:    c,
		queue:  newQueue(),
		done:   make(chan struct{}),
		logger: c.Logger,
	}

	ready := make(chan error, 1)
	go r.worker(ready)

	select {
	case err := <-ready:
		if err != nil {
			r.terminate()
			return nil, err
		}
	case <-ctx.Done():
		r.terminate()
		return nil, ctx.Err()
	}

	return r, nil
}

// Engine returns the engine kind this runtime was built with.
func (r *Runtime) Engine() string {
	return r.cfg.Engine
}

// Submit hands script to the worker and returns immediately with a Call to
// await. Submission never blocks on queue capacity; the queue is unbounded.
// Submitting to a terminated runtime fails fast with a channel_closed error.
//
// The script is not validated here: parse errors surface on the worker and
// come back through Call.Wait. ctx is attached to the execution trace; it
// does not cancel the script.
func (r *Runtime) Submit(ctx context.Context, script string) (*Call, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := command{
		id:     ulid.Make().String(),
		script: script,
		ctx:    ctx,
		reply:  make(chan response, 1),
	}

	r.mu.RLock()
	if r.closed {
		r.mu.RUnlock()
		return nil, errors.Terminated()
	}
	queueDepth.Inc()
	r.queue.in <- cmd
	r.mu.RUnlock()

	submissionsTotal.WithLabelValues(r.cfg.Engine).Inc()
	r.logger.Debug("script submitted",
		zap.String("call_id", cmd.id),
		zap.String("engine", r.cfg.Engine),
		zap.Int("source_bytes", len(cmd.script)))

	return &Call{id: cmd.id, reply: cmd.reply}, nil
}

// Execute submits script and waits for its result.
//
// Never call Execute from code the worker itself runs, such as a Go
// function exposed to the engine: the worker cannot answer while blocked
// waiting on itself, so the call deadlocks. Use Submit from such code and
// await somewhere else.
func (r *Runtime) Execute(ctx context.Context, script string) (*Result, error) {
	call, err := r.Submit(ctx, script)
	if err != nil {
		return nil, err
	}
	return call.Wait(ctx)
}

// Close stops intake immediately and waits for the worker to finish the
// script in progress plus everything already queued. ctx bounds the wait.
// Close is idempotent and safe to call concurrently.
func (r *Runtime) Close(ctx context.Context) error {
	r.terminate()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done reports worker termination. The channel closes after the engine has
// shut down, whether through Close or a worker fault.
func (r *Runtime) Done() <-chan struct{} {
	return r.done
}

// terminate closes the submission side exactly once. Called from Close and
// from the worker's fault path; the read lock held during Submit's send
// keeps the close from racing an in-flight submission.
func (r *Runtime) terminate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	close(r.queue.in)
}
