package dynload

import "errors"

// ErrSymbolNotFound indicates the loaded module exposes no value under the
// requested symbol name.
// Usage: if errors.Is(err, ErrSymbolNotFound) { /* report symbol+module */ }.
var ErrSymbolNotFound = errors.New("dynload: symbol not found in module")

// ErrBadSymbolType indicates the resolved symbol does not satisfy the curve
// constructor contract (see package docs for the exact signature).
var ErrBadSymbolType = errors.New("dynload: symbol does not implement the weight curve contract")

// ErrForbiddenImport indicates a script imports a package outside the
// stdlib whitelist the loader permits.
var ErrForbiddenImport = errors.New("dynload: script imports a forbidden package")

// ErrModuleClosed indicates a Resolve call on an already released module.
var ErrModuleClosed = errors.New("dynload: module already closed")

// ErrNotInitialized indicates Evaluate was reached before Initialize
// succeeded on a script curve.
var ErrNotInitialized = errors.New("dynload: curve evaluated before initialization")
