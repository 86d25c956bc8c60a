package scriptruntime

// Engine represents one hosted script interpreter instance.
//
// An Engine is stateful: globals and definitions persist across Eval calls
// until Close. Implementations are NOT safe for concurrent use; callers must
// confine an instance to a single goroutine. The runtime package does exactly
// that, and almost all code should go through it instead of holding an Engine
// directly.
type Engine interface {
	// Eval runs source to completion and returns any output the script wrote
	// through the engine's console facilities. A script that throws, or that
	// fails to parse, yields a non-nil error carrying the engine's own
	// formatted diagnostic.
	Eval(source string) (string, error)

	// Close releases the interpreter. Eval must not be called afterwards.
	Close() error
}
