// SPDX-License-Identifier: MIT
// Package: expoweight/weightfn
//
// types.go — options for weight-function resolution.

package weightfn

import "github.com/katalvlaran/expoweight/dynload"

// Options configures Resolve and Slot.Make.
//
// Fields:
//   - Loader    — dynamic-module loader used for names that match no
//     built-in alias. nil means this configuration has no dynamic-loading
//     support and unknown names are rejected outright.
//   - SelfCheck — when true, a freshly initialized dynamic curve is sampled
//     over a uniform grid and rejected (ErrSelfCheck) if any sample falls
//     outside [0,1). Built-ins are closed forms and are never self-checked.
//   - SelfCheckSamples — grid size for the self-check; values below 2 fall
//     back to DefaultSelfCheckSamples.
//
// Example:
//
//	opts := weightfn.DefaultOptions()
//	opts.Loader = dynload.NewScriptLoader()
//	opts.SelfCheck = true
//
//	c, err := weightfn.Resolve("mycurve.go", args, 0.5, 0.2, &opts)
type Options struct {
	Loader           dynload.Loader
	SelfCheck        bool
	SelfCheckSamples int
}

// DefaultSelfCheckSamples is the self-check grid size used when
// SelfCheckSamples is unset.
const DefaultSelfCheckSamples = 1000

// DefaultOptions returns the zero-trust baseline: no dynamic loading,
// self-check prepared but disabled.
func DefaultOptions() Options {
	return Options{SelfCheckSamples: DefaultSelfCheckSamples}
}
