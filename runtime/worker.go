package runtime

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	scriptruntime "github.com/wippyai/script-runtime"
	"github.com/wippyai/script-runtime/engine"
	"github.com/wippyai/script-runtime/errors"
	"github.com/wippyai/script-runtime/journal"
)

var tracer = otel.Tracer("script-runtime/runtime")

// worker owns the engine instance for its runtime. The engine is
// constructed on this goroutine and never leaves it. After reporting
// readiness the worker executes queued commands in arrival order until the
// queue closes, then shuts the engine down.
func (r *Runtime) worker(ready chan<- error) {
	defer close(r.done)

	eng, err := engine.New(r.cfg.Engine)
	if err != nil {
		ready <- err
		r.drainClosing()
		return
	}
	ready <- nil

	activeWorkers.Inc()
	defer activeWorkers.Dec()
	r.logger.Debug("worker started", zap.String("engine", r.cfg.Engine))

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("worker fault outside command boundary",
				zap.String("engine", r.cfg.Engine),
				zap.Any("panic", rec))
			r.terminate()
			r.drainClosing()
		}
		if cerr := eng.Close(); cerr != nil {
			r.logger.Warn("engine close failed", zap.Error(cerr))
		}
		r.logger.Debug("worker exited", zap.String("engine", r.cfg.Engine))
	}()

	for cmd := range r.queue.out {
		r.run(eng, cmd)
	}
}

// run executes one command, classifies the outcome, sends exactly one
// reply, and records the execution. A panic out of the engine is contained
// to this command; the worker loop continues with the next one.
func (r *Runtime) run(eng scriptruntime.Engine, cmd command) {
	queueDepth.Dec()

	_, span := tracer.Start(cmd.ctx, "script.execute", trace.WithAttributes(
		attribute.String("script.call_id", cmd.id),
		attribute.String("script.engine", r.cfg.Engine),
		attribute.Int("script.source_bytes", len(cmd.script)),
	))
	defer span.End()

	start := time.Now()
	var (
		output  string
		evalErr error
		faulted any
	)

	func() {
		defer func() {
			if rec := recover(); rec != nil {
				faulted = rec
			}
		}()
		output, evalErr = eng.Eval(cmd.script)
	}()

	duration := time.Since(start)
	executionDuration.WithLabelValues(r.cfg.Engine).Observe(duration.Seconds())

	var resp response
	outcome := OutcomeExecuted
	switch {
	case faulted != nil:
		outcome = OutcomeWorkerFault
		resp.err = errors.Fault(r.cfg.Engine, cmd.id, faulted)
	case evalErr != nil:
		outcome = OutcomeScriptError
		resp.err = errors.Script(r.cfg.Engine, cmd.id, evalErr)
	default:
		resp.result = &Result{
			ID:       cmd.id,
			Outcome:  OutcomeExecuted,
			Output:   output,
			Duration: duration,
		}
	}

	executionsTotal.WithLabelValues(r.cfg.Engine, outcome).Inc()
	span.SetAttributes(attribute.String("script.outcome", outcome))
	r.logger.Debug("script finished",
		zap.String("call_id", cmd.id),
		zap.String("outcome", outcome),
		zap.Duration("duration", duration))

	// The reply channel is buffered, so this send completes even when the
	// caller abandoned its wait.
	cmd.reply <- resp

	r.record(cmd.id, cmd.script, outcome, output, resp.err, duration)
}

// record persists the outcome when a journal recorder is configured. A
// recorder error is logged and dropped; a panicking recorder counts as an
// infrastructure fault and terminates the worker.
func (r *Runtime) record(id, script, outcome, output string, execErr error, duration time.Duration) {
	if r.cfg.Recorder == nil {
		return
	}

	entry := journal.Entry{
		ID:         id,
		Engine:     r.cfg.Engine,
		Script:     script,
		Outcome:    outcome,
		Output:     output,
		DurationMS: duration.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}
	if execErr != nil {
		entry.Diagnostic = execErr.Error()
	}

	// The submitting caller may be gone already, so recording runs under
	// its own context.
	if err := r.cfg.Recorder.Record(context.Background(), entry); err != nil {
		r.logger.Warn("journal record failed",
			zap.String("call_id", id),
			zap.Error(err))
	}
}

// drainClosing closes the reply channel of every command still queued,
// signalling the callers that no response will come.
func (r *Runtime) drainClosing() {
	for cmd := range r.queue.out {
		queueDepth.Dec()
		close(cmd.reply)
	}
}
