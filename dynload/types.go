package dynload

import "github.com/katalvlaran/expoweight/curve"

// Loader turns a module name into a loaded Module. Implementations decide
// what a "name" means: ScriptLoader treats it as a path to a Go source file;
// test doubles may ignore it entirely.
type Loader interface {
	Load(name string) (Module, error)
}

// Module is an opaque loaded-module resource. It is exclusively owned by
// whoever obtained it from a Loader; Close releases it and invalidates every
// curve previously resolved from it.
type Module interface {
	// Resolve looks up symbol inside the module and returns the curve it
	// designates. The returned curve is only valid until Close.
	Resolve(symbol string) (curve.Curve, error)

	// Close releases the module. Implementations must tolerate exactly one
	// call; behavior of Resolve after Close is ErrModuleClosed.
	Close() error
}
