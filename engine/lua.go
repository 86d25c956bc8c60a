package engine

import (
	"fmt"
	"strings"

	lua "github.com/Shopify/go-lua"

	scriptruntime "github.com/wippyai/script-runtime"
	"github.com/wippyai/script-runtime/errors"
)

// LuaEngine hosts one go-lua interpreter with the standard libraries open.
// Globals persist across Eval calls until Close.
//
// LuaEngine is NOT safe for concurrent use.
type LuaEngine struct {
	state  *lua.State
	out    strings.Builder
	closed bool
}

// NewLua constructs a Lua engine with print redirected into an internal
// capture buffer.
func NewLua() *LuaEngine {
	state := lua.NewState()
	lua.OpenLibraries(state)

	e := &LuaEngine{state: state}
	e.installPrint()
	return e
}

func (e *LuaEngine) installPrint() {
	e.state.PushGoFunction(func(l *lua.State) int {
		n := l.Top()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			if s, ok := l.ToString(i); ok {
				parts = append(parts, s)
			} else {
				parts = append(parts, fmt.Sprint(l.ToValue(i)))
			}
		}
		e.out.WriteString(strings.Join(parts, "\t"))
		e.out.WriteByte('\n')
		return 0
	})
	e.state.SetGlobal("print")
}

// Eval runs source to completion and returns the print output it produced.
// Raised errors and parse failures come back as the interpreter's formatted
// diagnostic; partial print output is still returned alongside.
func (e *LuaEngine) Eval(source string) (string, error) {
	if e.closed {
		return "", errors.InvalidInput(errors.PhaseExecute, "engine is closed")
	}

	e.out.Reset()
	err := lua.DoString(e.state, source)
	output := e.out.String()
	if err != nil {
		return output, err
	}
	return output, nil
}

// Close releases the interpreter. Eval fails afterwards.
func (e *LuaEngine) Close() error {
	e.closed = true
	e.state = nil
	return nil
}

var _ scriptruntime.Engine = (*LuaEngine)(nil)
