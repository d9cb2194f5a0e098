package diag

import (
	"errors"
	"fmt"
	"io"
	"math"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/expoweight/curve"
)

// ErrTooFewSamples indicates n < 2; the grid x = i/(n−1) needs at least the
// two endpoints.
var ErrTooFewSamples = errors.New("diag: need at least 2 samples")

// Dump writes n samples of c to w, one "index x weight" line per sample,
// with x = i/(n−1) spanning [0,1]. Purely observational: nothing is mutated
// and no range enforcement happens here.
// Complexity: O(n) evaluations, O(1) space.
func Dump(w io.Writer, c curve.Curve, n int) error {
	if n < 2 {
		return fmt.Errorf("Dump(n=%d): %w", n, ErrTooFewSamples)
	}

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)
		if _, err := fmt.Fprintf(w, "%d %g %g\n", i, x, c.Evaluate(x)); err != nil {
			return fmt.Errorf("Dump: writing sample %d: %w", i, err)
		}
	}

	return nil
}

// Check samples c at n uniform points across [0,1] and counts faults —
// weights outside [0,1), NaN included. ok is true iff no sample faulted.
//
// Sampling runs on one worker per CPU; the fault counter is an atomic
// increment since workers race on it. A panic inside Evaluate (possible
// with user-supplied curves) is recovered and returned as an error.
// Complexity: O(n) evaluations across GOMAXPROCS workers.
func Check(c curve.Curve, n int) (ok bool, faults int, err error) {
	if n < 2 {
		return false, 0, fmt.Errorf("Check(n=%d): %w", n, ErrTooFewSamples)
	}

	var (
		faultCount atomic.Int64
		g          errgroup.Group
	)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}

	for wk := 0; wk < workers; wk++ {
		lo := wk * n / workers
		hi := (wk + 1) * n / workers

		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("diag: curve panicked during check: %v", r)
				}
			}()

			for i := lo; i < hi; i++ {
				y := float64(i) / float64(n-1)
				if wt := c.Evaluate(y); wt < 0 || wt >= 1 || math.IsNaN(wt) {
					faultCount.Add(1)
				}
			}

			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return false, int(faultCount.Load()), err
	}

	faults = int(faultCount.Load())

	return faults == 0, faults, nil
}
