// Package engine provides hosted script engine implementations.
//
// Two engines ship with the library:
//
//	JSEngine  - JavaScript via the goja interpreter
//	LuaEngine - Lua 5.2 via the go-lua interpreter
//
// Both keep interpreter state alive across evaluations and capture what the
// script writes through console.log (JavaScript) or print (Lua), returning
// it per evaluation.
//
// # Registry
//
// Engines are constructed through a registry keyed by kind:
//
//	eng, err := engine.New(engine.JS)
//
// InitPlatform registers the built-in kinds exactly once per process; New
// calls it lazily, so explicit initialization is only needed when custom
// kinds must win a race against the built-ins. Additional engines can be
// added with Register.
//
// # Thread Safety
//
// The registry is safe for concurrent use. Engine instances are NOT
// thread-safe and must be confined to a single goroutine. The runtime
// package does this confinement for you.
//
// Most users should use the runtime package instead of constructing engines
// directly. This package is for advanced use cases requiring direct control.
package engine
