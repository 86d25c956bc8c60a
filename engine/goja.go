package engine

import (
	"strings"

	"github.com/dop251/goja"

	scriptruntime "github.com/wippyai/script-runtime"
	"github.com/wippyai/script-runtime/errors"
)

// JSEngine hosts one goja JavaScript interpreter. Globals and function
// definitions persist across Eval calls until Close.
//
// JSEngine is NOT safe for concurrent use.
type JSEngine struct {
	vm     *goja.Runtime
	out    strings.Builder
	closed bool
}

// NewJS constructs a JavaScript engine with console.log, console.info,
// console.warn and console.error bound to an internal capture buffer.
func NewJS() *JSEngine {
	e := &JSEngine{vm: goja.New()}
	e.installConsole()
	return e
}

func (e *JSEngine) installConsole() {
	write := func(call goja.FunctionCall) goja.Value {
		parts := make([]string, 0, len(call.Arguments))
		for _, arg := range call.Arguments {
			parts = append(parts, arg.String())
		}
		e.out.WriteString(strings.Join(parts, " "))
		e.out.WriteByte('\n')
		return goja.Undefined()
	}

	console := e.vm.NewObject()
	console.Set("log", write)
	console.Set("info", write)
	console.Set("warn", write)
	console.Set("error", write)
	e.vm.Set("console", console)
}

// Eval runs source to completion and returns the console output it produced.
// Thrown values and syntax errors come back as the interpreter's formatted
// diagnostic; partial console output is still returned alongside.
func (e *JSEngine) Eval(source string) (string, error) {
	if e.closed {
		return "", errors.InvalidInput(errors.PhaseExecute, "engine is closed")
	}

	e.out.Reset()
	_, err := e.vm.RunString(source)
	output := e.out.String()
	if err != nil {
		return output, err
	}
	return output, nil
}

// Close releases the interpreter. Eval fails afterwards.
func (e *JSEngine) Close() error {
	e.closed = true
	e.vm = nil
	return nil
}

var _ scriptruntime.Engine = (*JSEngine)(nil)
