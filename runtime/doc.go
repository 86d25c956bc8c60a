// Package runtime provides the high-level API for executing scripts on a
// confined engine instance.
//
// # Quick Start
//
//	ctx := context.Background()
//	rt, err := runtime.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close(ctx)
//
//	// Blocking convenience
//	res, err := rt.Execute(ctx, `console.log("hello")`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(res.Output) // hello
//
//	// Async: submit now, await later
//	call, err := rt.Submit(ctx, "var x = 42")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, err = call.Wait(ctx)
//
// # Execution Semantics
//
// One worker goroutine owns one engine instance for the life of the
// runtime. Scripts run strictly in submission order, one at a time, to
// completion; engine state persists between scripts. Scripts never run
// concurrently on the same runtime, so script code has nothing to
// synchronize.
//
// A failing script reports the engine's diagnostic to its submitter as a
// script_error and leaves the worker healthy. A panic escaping the engine
// is contained to the failing command and reported as a worker_fault.
//
// # Shutdown
//
// Close stops intake at once: later submits fail fast with "runtime has
// terminated". Work already accepted still runs; Close returns once the
// queue is drained and the engine is shut down, or when its context
// expires. If the worker dies without Close, replies for accepted commands
// are closed, and awaiting callers fail with "no response received from
// runtime" instead of hanging.
//
// # No Cancellation
//
// An in-flight script cannot be cancelled or timed out. Call.Wait honors
// its context, but cancelling only abandons the result: the script still
// runs to completion on the worker. Keep submitted scripts short.
//
// # Observability
//
// The package exports Prometheus collectors (submission and execution
// counters, a duration histogram, queue depth, active workers) and opens
// one OpenTelemetry span per execution, parented on the submitter's
// context. A zap logger and a journal recorder plug in through Config.
//
// # Thread Safety
//
// Runtime and Call are safe for concurrent use. The engine instance is
// confined to the worker goroutine and cannot be reached through this API.
package runtime
