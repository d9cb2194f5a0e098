// SPDX-License-Identifier: MIT
// Package: expoweight/weightfn
//
// slot.go — the pipeline's single active weight function.
//
// Contract (strict):
//   • At most one curve is active per Slot at any time.
//   • Installing a new curve releases the previous one FIRST, before
//     resolution begins — replace-on-reconfigure, never two owners.
//   • Slot is setup-time state: Make/Close are single-threaded; only the
//     Active curve's Evaluate may be shared with worker goroutines.

package weightfn

import (
	"io"

	"github.com/katalvlaran/expoweight/curve"
)

// Slot owns the currently active weight function. The zero value is an
// empty, ready-to-use slot. A Slot replaces the hidden process-wide global
// of classic fusion tools with explicit, testable state.
type Slot struct {
	active curve.Curve
}

// Make resolves (name, args, yOptimum, width) exactly like Resolve and
// installs the result as the active curve. The previously active curve, if
// any, is released before resolution starts; on resolution failure the slot
// is left empty rather than keeping a stale curve.
func (s *Slot) Make(name string, args curve.ArgumentList, yOptimum, width float64, opts *Options) (curve.Curve, error) {
	s.release()

	c, err := Resolve(name, args, yOptimum, width, opts)
	if err != nil {
		return nil, err
	}
	s.active = c

	return c, nil
}

// Active returns the currently installed curve, or nil for an empty slot.
func (s *Slot) Active() curve.Curve { return s.active }

// Close releases the active curve and empties the slot. Safe on an empty
// slot and safe to call repeatedly.
func (s *Slot) Close() error {
	c := s.active
	s.active = nil
	if closer, ok := c.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}

// release drops the active curve, closing it when it owns resources
// (dynamically loaded curves do; built-ins do not).
func (s *Slot) release() {
	if closer, ok := s.active.(io.Closer); ok {
		_ = closer.Close()
	}
	s.active = nil
}
