package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseInit     Phase = "init"     // platform setup or engine construction
	PhaseSubmit   Phase = "submit"   // handing a script to the worker
	PhaseAwait    Phase = "await"    // waiting on a reply
	PhaseExecute  Phase = "execute"  // script evaluation on the worker
	PhaseShutdown Phase = "shutdown" // runtime teardown
	PhaseJournal  Phase = "journal"  // execution history persistence
)

// Kind categorizes the error
type Kind string

const (
	KindInitialization Kind = "initialization"
	KindScriptError    Kind = "script_error"
	KindChannelClosed  Kind = "channel_closed"
	KindWorkerFault    Kind = "worker_fault"
	KindInvalidInput   Kind = "invalid_input"
	KindNotFound       Kind = "not_found"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Engine string
	CallID string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Engine != "" || e.CallID != "" {
		b.WriteString(" (")
		if e.Engine != "" && e.CallID != "" {
			b.WriteString("engine ")
			b.WriteString(e.Engine)
			b.WriteString(", call ")
			b.WriteString(e.CallID)
		} else if e.Engine != "" {
			b.WriteString("engine ")
			b.WriteString(e.Engine)
		} else {
			b.WriteString("call ")
			b.WriteString(e.CallID)
		}
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Engine sets the engine kind the error belongs to
func (b *Builder) Engine(name string) *Builder {
	b.err.Engine = name
	return b
}

// Call sets the call identifier
func (b *Builder) Call(id string) *Builder {
	b.err.CallID = id
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Initialization creates a fatal construction-time error. Returned when the
// platform or an engine instance cannot be brought up; never retried.
func Initialization(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindInitialization,
		Detail: detail,
		Cause:  cause,
	}
}

// Script creates a script evaluation error carrying the engine's diagnostic
// as the cause. The worker stays healthy after one of these.
func Script(engine, callID string, cause error) *Error {
	return &Error{
		Phase:  PhaseExecute,
		Kind:   KindScriptError,
		Engine: engine,
		CallID: callID,
		Detail: "script evaluation failed",
		Cause:  cause,
	}
}

// Fault creates a worker fault error from a recovered panic value
func Fault(engine, callID string, recovered any) *Error {
	return &Error{
		Phase:  PhaseExecute,
		Kind:   KindWorkerFault,
		Engine: engine,
		CallID: callID,
		Detail: fmt.Sprintf("recovered from panic: %v", recovered),
	}
}

// Terminated creates the error reported when a script is submitted to a
// runtime whose worker has already exited. Matchable with errors.Is against
// another Terminated value.
func Terminated() *Error {
	return &Error{
		Phase:  PhaseSubmit,
		Kind:   KindChannelClosed,
		Detail: "runtime has terminated",
	}
}

// NoResponse creates the error reported when the worker died before
// answering a call that was already accepted
func NoResponse() *Error {
	return &Error{
		Phase:  PhaseAwait,
		Kind:   KindChannelClosed,
		Detail: "no response received from runtime",
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
