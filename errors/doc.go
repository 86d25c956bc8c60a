// Package errors provides structured error types for the script-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: engine kind, call identifier, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseExecute, errors.KindScriptError).
//		Engine("js").
//		Call(callID).
//		Cause(evalErr).
//		Detail("script evaluation failed").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Script("js", callID, evalErr)
//	err := errors.Terminated()
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
