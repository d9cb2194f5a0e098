package curve

// ArgumentList is an ordered sequence of uninterpreted strings handed to a
// curve's Initialize. Built-in curves ignore it; dynamically loaded curves
// may parse it arbitrarily (e.g. as named sub-parameters).
type ArgumentList []string

// Curve is the exposure weight capability.
//
// Initialize configures the curve and is called exactly once, single-threaded,
// strictly before any Evaluate call. Evaluate maps a normalized brightness
// y ∈ [0,1] to a weight in [0,1); it must be pure — no state is written during
// evaluation — so it is safe under concurrent invocation from worker
// goroutines. The caller establishes the happens-before edge between
// Initialize and the first Evaluate; this package does not synchronize it.
type Curve interface {
	Initialize(yOptimum, width float64, args ArgumentList) error
	Evaluate(y float64) float64
}

// Shape selects one of the built-in closed-form curves.
//
//   - Gaussian   — classic bell, decay ∝ exp(−z²/2).
//   - Lorentzian — bell with heavier tails, 1/(1+z²/2).
//   - HalfSine   — single raised half-period of a cosine, zero outside.
//   - FullSine   — full-period cosine bump, narrower falloff than HalfSine.
//   - Bisquare   — quartic (1−z²)² bump with compact support.
type Shape int

const (
	// Gaussian bell curve; the default pick for exposure fusion.
	Gaussian Shape = iota

	// Lorentzian bell curve with heavier tails than Gaussian.
	Lorentzian

	// HalfSine raised cosine over a half period, zero outside.
	HalfSine

	// FullSine raised cosine over a full period, zero outside.
	FullSine

	// Bisquare quartic bump with compact support.
	Bisquare

	numShapes // sentinel, keep last
)

// String returns the canonical lower-case name of the shape.
func (s Shape) String() string {
	switch s {
	case Gaussian:
		return "gaussian"
	case Lorentzian:
		return "lorentzian"
	case HalfSine:
		return "half-sine"
	case FullSine:
		return "full-sine"
	case Bisquare:
		return "bi-square"
	default:
		return "unknown"
	}
}
