package curve

import (
	"fmt"
	"math"
)

// DefaultYOptimum is the brightness at which exposure fusion traditionally
// places the weight maximum.
const DefaultYOptimum = 0.5

// DefaultWidth is the traditional FWHM of the exposure weight curve.
const DefaultWidth = 0.2

// maxWeight is the largest float64 strictly below 1. Every kernel peaks at
// exactly this value so Evaluate stays inside the half-open range [0,1)
// even when y lands exactly on yOptimum.
const maxWeight = 1 - 0x1p-52

// fwhm holds, per shape, the full width at half maximum of the raw kernel in
// z-space. Dividing the user-facing width by it makes width mean FWHM for
// every shape alike.
var fwhm = [numShapes]float64{
	Gaussian:   2 * math.Sqrt(2*math.Ln2),
	Lorentzian: 2 * math.Sqrt2,
	HalfSine:   2 * math.Pi / 3,
	FullSine:   math.Pi,
	Bisquare:   2 * math.Sqrt(1-1/math.Sqrt2),
}

// Builtin is one of the five closed-form exposure weight curves, selected by
// Shape at construction time. It carries no state beyond its two numeric
// parameters, so Evaluate is trivially safe under concurrent use.
type Builtin struct {
	shape    Shape
	yOptimum float64
	width    float64
}

// compile-time capability check
var _ Curve = (*Builtin)(nil)

// New constructs a built-in curve of the given shape, centered at yOptimum
// with FWHM width. Returns ErrUnknownShape or ErrNonPositiveWidth on
// invalid parameters.
// Complexity: O(1) time, O(1) space.
func New(shape Shape, yOptimum, width float64) (*Builtin, error) {
	if shape < 0 || shape >= numShapes {
		return nil, fmt.Errorf("New(shape=%d): %w", int(shape), ErrUnknownShape)
	}
	if width <= 0 {
		return nil, fmt.Errorf("New(%s, width=%g): %w", shape, width, ErrNonPositiveWidth)
	}

	return &Builtin{shape: shape, yOptimum: yOptimum, width: width}, nil
}

// Shape reports which built-in variant this curve is.
func (b *Builtin) Shape() Shape { return b.shape }

// Initialize re-parameterizes the curve. args is accepted for capability
// compatibility and ignored: built-ins have no sub-parameters.
func (b *Builtin) Initialize(yOptimum, width float64, _ ArgumentList) error {
	if width <= 0 {
		return fmt.Errorf("Initialize(%s, width=%g): %w", b.shape, width, ErrNonPositiveWidth)
	}
	b.yOptimum = yOptimum
	b.width = width

	return nil
}

// Evaluate maps brightness y to a weight in [0,1).
// Maximal at y = yOptimum, monotonically decaying away from it.
// Complexity: O(1), no allocations, safe for concurrent callers.
func (b *Builtin) Evaluate(y float64) float64 {
	// z-space: distance from the optimum in units of the raw kernel,
	// scaled so that the user-facing width is the FWHM.
	z := (y - b.yOptimum) * fwhm[b.shape] / b.width

	switch b.shape {
	case Gaussian:
		return maxWeight * math.Exp(-0.5*z*z)
	case Lorentzian:
		return maxWeight / (1 + 0.5*z*z)
	case HalfSine:
		if math.Abs(z) > math.Pi/2 {
			return 0
		}

		return maxWeight * math.Cos(z)
	case FullSine:
		if math.Abs(z) > math.Pi {
			return 0
		}

		return maxWeight * 0.5 * (1 + math.Cos(z))
	case Bisquare:
		if math.Abs(z) > 1 {
			return 0
		}
		u := 1 - z*z

		return maxWeight * u * u
	default:
		// unreachable: New rejects unknown shapes
		return 0
	}
}
