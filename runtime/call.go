package runtime

import (
	"context"
	"time"

	"github.com/wippyai/script-runtime/errors"
)

// Execution outcomes as recorded in metrics and the journal.
const (
	OutcomeExecuted    = "executed"
	OutcomeScriptError = "script_error"
	OutcomeWorkerFault = "worker_fault"
)

// Result describes one successfully executed script.
//
// Scripts do not return values through the bridge. Outcome is the fixed
// success marker and Output carries whatever the script printed; callers
// that need a computed value must print it.
type Result struct {
	ID       string        // call identifier assigned at submission
	Outcome  string        // always OutcomeExecuted
	Output   string        // captured console/print output
	Duration time.Duration // execution time on the worker
}

// Call is a single in-flight script submission.
type Call struct {
	id    string
	reply chan response
}

// ID returns the call identifier assigned at submission.
func (c *Call) ID() string { return c.id }

// Wait blocks until the runtime answers, the runtime dies before answering,
// or ctx is done. Cancelling ctx abandons the result; the script still runs
// to completion on the worker. Wait consumes the response and must be
// called at most once.
func (c *Call) Wait(ctx context.Context) (*Result, error) {
	select {
	case resp, ok := <-c.reply:
		if !ok {
			return nil, errors.NoResponse()
		}
		if resp.err != nil {
			return nil, resp.err
		}
		return resp.result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
