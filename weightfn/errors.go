// SPDX-License-Identifier: MIT
// Package: expoweight/weightfn
//
// errors.go — sentinel errors for weight-function resolution.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Resolve attaches names and context via %w wrapping.
//   • Every error from this package is a configuration error: resolution
//     runs once at setup, so callers are expected to fail fast and loud.

package weightfn

import "errors"

// ErrUnknownFunction indicates the requested name matches no built-in alias.
// Classification: configuration error (name).
// Usage: if errors.Is(err, ErrUnknownFunction) { /* report bad name */ }.
var ErrUnknownFunction = errors.New("unknown weight function")

// ErrNoDynamicSupport indicates an unknown name could not fall through to
// dynamic loading because no Loader is configured.
// Usage: if errors.Is(err, ErrNoDynamicSupport) { /* note missing support */ }.
var ErrNoDynamicSupport = errors.New("dynamic loading of weight functions not supported by this configuration")

// ErrNoSymbolArgument indicates dynamic resolution was requested (unknown
// name, Loader present) but the argument list supplied no symbol name.
var ErrNoSymbolArgument = errors.New("no symbol argument supplied for dynamically loaded weight function")

// ErrSelfCheck indicates a freshly resolved dynamic curve produced samples
// outside [0,1) during the optional post-initialization range check.
var ErrSelfCheck = errors.New("weight function failed range self-check")
