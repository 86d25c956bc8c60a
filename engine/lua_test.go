package engine

import (
	"strings"
	"testing"
)

func TestLuaEngine_Eval(t *testing.T) {
	e := NewLua()
	defer e.Close()

	out, err := e.Eval("return 1 + 1")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}

func TestLuaEngine_PrintCapture(t *testing.T) {
	e := NewLua()
	defer e.Close()

	out, err := e.Eval(`print("hello", 42)`)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if out != "hello\t42\n" {
		t.Errorf("output = %q, want %q", out, "hello\t42\n")
	}
}

func TestLuaEngine_StatePersists(t *testing.T) {
	e := NewLua()
	defer e.Close()

	if _, err := e.Eval("x = 42"); err != nil {
		t.Fatalf("define: %v", err)
	}
	out, err := e.Eval("print(x * 2)")
	if err != nil {
		t.Fatalf("use: %v", err)
	}
	if out != "84\n" {
		t.Errorf("output = %q, want %q", out, "84\n")
	}
}

func TestLuaEngine_RaisedError(t *testing.T) {
	e := NewLua()
	defer e.Close()

	_, err := e.Eval(`error("kaboom")`)
	if err == nil {
		t.Fatal("expected error from raised value")
	}
	if !strings.Contains(err.Error(), "kaboom") {
		t.Errorf("diagnostic %q does not contain raised message", err.Error())
	}

	// The engine survives a raise
	if _, err := e.Eval("return 1"); err != nil {
		t.Errorf("eval after raise: %v", err)
	}
}

func TestLuaEngine_SyntaxError(t *testing.T) {
	e := NewLua()
	defer e.Close()

	_, err := e.Eval("function end end")
	if err == nil {
		t.Fatal("expected error from invalid source")
	}
}

func TestLuaEngine_ClosedEval(t *testing.T) {
	e := NewLua()
	if err := e.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := e.Eval("return 1"); err == nil {
		t.Fatal("expected error from closed engine")
	}
}
