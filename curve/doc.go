// Package curve defines the exposure weight curve capability and the five
// built-in closed-form curves used by image fusion pipelines.
//
// What:
//
//   - Curve is the capability every weight function satisfies: a one-shot
//     Initialize step and a pure, concurrency-safe Evaluate step.
//   - Builtin implements the five classic shapes (Gaussian, Lorentzian,
//     half-sine, full-sine, bi-square) as a tagged variant — the set is
//     closed, so no open-ended dispatch is needed.
//
// Semantics:
//
//   - Every shape is maximal at y = yOptimum and decays monotonically as
//     |y − yOptimum| grows.
//   - width is the full width at half maximum (FWHM) for every shape, so
//     switching shapes keeps the falloff visually comparable.
//   - Evaluate(y) stays within [0,1) for all y ∈ [0,1]; the peak is scaled
//     to the largest float64 below 1.
//
// Concurrency:
//
//   - Initialize is called once, single-threaded, before any Evaluate.
//   - Evaluate writes no state and may be called from any number of
//     goroutines simultaneously.
//
// Errors:
//
//   - ErrNonPositiveWidth: width must be > 0.
//   - ErrUnknownShape: shape value outside the defined set.
//
// See diag/ for sampling utilities and weightfn/ for name-based creation.
package curve
