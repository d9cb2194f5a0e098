// Package expoweight selects and evaluates exposure weight curves — scalar
// functions mapping a normalized brightness y ∈ [0,1] to a blending
// confidence weight w ∈ [0,1) — for multi-exposure image fusion pipelines.
//
// 🚀 What is expoweight?
//
//	A small, hot-path-friendly library that brings together:
//		• Built-in curves: Gaussian, Lorentzian, half-sine, full-sine, bi-square
//		• A name-based factory with case-insensitive aliases
//		• User-supplied curves loaded from external Go scripts at runtime
//		• Diagnostics: dump a curve over a sample grid, range-check it in parallel
//
// ✨ Why choose expoweight?
//
//   - Concurrency-ready – Evaluate is pure and safe from any worker goroutine
//   - Explicit ownership – one active curve per Slot, released on replacement
//   - Extensible – ship your own curve as a script, no recompilation needed
//   - Fail-fast – configuration mistakes surface as errors, never as bad blends
//
// Under the hood, everything is organized under four subpackages:
//
//	curve/    — the WeightCurve capability and the five built-in shapes
//	dynload/  — loading user-supplied curves from external modules
//	weightfn/ — the factory, alias table and the current-curve Slot
//	diag/     — dump & check diagnostics over a uniform sample grid
//
// Quick ASCII example:
//
//	  w
//	  1 ┤      ___
//	    │    /     \
//	    │  /         \
//	  0 ┼─────┬────────── y
//	    0   y_opt      1
//
//	a bell-shaped weight, maximal at y_optimum, falling off with width.
//
// Dive into the per-package docs and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/expoweight
package expoweight
