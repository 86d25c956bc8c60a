// Package scriptruntime provides a thread-confined script engine bridge for Go.
//
// Embeddable script interpreters keep mutable per-instance state and must only
// ever be touched from a single thread of execution. This library confines each
// engine instance to one dedicated worker goroutine and lets any number of
// concurrent callers submit scripts through a channel bridge, awaiting results
// without blocking each other or the Go scheduler.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	scriptruntime/       Root package with the core Engine interface
//	├── runtime/         Channel bridge and the worker that owns an engine
//	├── engine/          Hosted engine implementations (JavaScript, Lua)
//	├── pool/            Fixed-size pooling of isolated runtime instances
//	├── journal/         SQLite-backed execution history
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Create a runtime and execute scripts:
//
//	rt, err := runtime.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close(ctx)
//
//	res, err := rt.Execute(ctx, "var x = 41; x + 1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Outcome) // "executed"
//
// Engine state persists across calls on the same runtime, so a later
// Execute(ctx, "x * 2") sees the x defined above.
//
// # Execution Model
//
// Each Runtime owns exactly one engine instance, constructed inside the worker
// goroutine and never referenced outside it. Callers submit scripts into an
// unbounded queue; the worker executes them strictly in arrival order, one at
// a time, to completion. A script that throws reports its diagnostic to the
// submitting caller only; the worker and its engine keep running.
//
// Results carry a success marker and any console output the script produced.
// Structured extraction of script return values is not supported.
//
// # Thread Safety
//
// Runtime, Pool and Call are safe for concurrent use. Engine instances are NOT
// thread-safe; the runtime never shares one across goroutines, and code that
// constructs an Engine directly must keep it on a single goroutine.
//
// # Lifecycle
//
// Closing a runtime stops intake immediately, lets the script in progress
// finish, drains what was already queued, then shuts the engine down. Submits
// after Close fail fast; they never hang. In-flight scripts cannot be
// cancelled, so a caller that abandons its await leaves the script running to
// completion on the worker.
//
// For workloads that need parallel execution, use the pool package: isolated
// runtime instances side by side, each with its own engine and state.
package scriptruntime
