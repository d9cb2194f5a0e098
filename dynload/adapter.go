package dynload

import (
	"fmt"

	"github.com/katalvlaran/expoweight/curve"
)

// Adapter presents a curve resolved from an external module as an ordinary
// curve.Curve while keeping exclusive ownership of the module handle. The
// adapter must not outlive its module: Close releases the handle and every
// reference resolved from it.
type Adapter struct {
	library string
	symbol  string
	module  Module
	fn      curve.Curve
	closed  bool
}

var _ curve.Curve = (*Adapter)(nil)

// NewAdapter loads library via loader, resolves symbol inside it, and wraps
// the result. On resolution failure the freshly loaded module is released
// before the error is returned, so no handle leaks.
// Complexity: dominated by the loader; the adapter itself is O(1).
func NewAdapter(loader Loader, library, symbol string) (*Adapter, error) {
	mod, err := loader.Load(library)
	if err != nil {
		return nil, fmt.Errorf("dynload: loading module %q: %w", library, err)
	}

	fn, err := mod.Resolve(symbol)
	if err != nil {
		_ = mod.Close()

		return nil, fmt.Errorf("dynload: resolving symbol %q in module %q: %w", symbol, library, err)
	}

	return &Adapter{library: library, symbol: symbol, module: mod, fn: fn}, nil
}

// Library reports the module name the adapter owns.
func (a *Adapter) Library() string { return a.library }

// Symbol reports the symbol name the curve was resolved from.
func (a *Adapter) Symbol() string { return a.symbol }

// Initialize forwards to the loaded curve, attaching module and symbol
// context to any failure it reports.
func (a *Adapter) Initialize(yOptimum, width float64, args curve.ArgumentList) error {
	if err := a.fn.Initialize(yOptimum, width, args); err != nil {
		return fmt.Errorf("dynload: weight function %q in module %q: %w", a.symbol, a.library, err)
	}

	return nil
}

// Evaluate forwards to the loaded curve. Purity and concurrency guarantees
// are whatever the external curve provides; the adapter adds no state.
func (a *Adapter) Evaluate(y float64) float64 { return a.fn.Evaluate(y) }

// Close releases the owned module handle. Safe to call more than once; only
// the first call reaches the module.
func (a *Adapter) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.fn = nil

	return a.module.Close()
}
