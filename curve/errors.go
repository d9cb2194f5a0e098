package curve

import "errors"

// ErrNonPositiveWidth indicates that a curve was configured with width ≤ 0.
// Usage: if errors.Is(err, ErrNonPositiveWidth) { /* reject configuration */ }.
var ErrNonPositiveWidth = errors.New("curve: width must be > 0")

// ErrUnknownShape indicates a Shape value outside the defined built-in set.
// Usage: if errors.Is(err, ErrUnknownShape) { /* reject shape */ }.
var ErrUnknownShape = errors.New("curve: unknown shape")
