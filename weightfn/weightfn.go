// SPDX-License-Identifier: MIT
// Package: expoweight/weightfn
//
// weightfn.go — name-based resolution of exposure weight functions.

package weightfn

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/expoweight/curve"
	"github.com/katalvlaran/expoweight/diag"
	"github.com/katalvlaran/expoweight/dynload"
)

// builtinAliases maps every accepted spelling, lower-cased, to its shape.
var builtinAliases = map[string]curve.Shape{
	"gauss":      curve.Gaussian,
	"gaussian":   curve.Gaussian,
	"lorentz":    curve.Lorentzian,
	"lorentzian": curve.Lorentzian,
	"halfsine":   curve.HalfSine,
	"half-sine":  curve.HalfSine,
	"fullsine":   curve.FullSine,
	"full-sine":  curve.FullSine,
	"bisquare":   curve.Bisquare,
	"bi-square":  curve.Bisquare,
}

// Resolve maps name to a ready-to-evaluate weight curve.
//
// Built-in names (case-insensitive, see package docs for the alias table)
// yield one of the five closed-form curves parameterized with (yOptimum,
// width); args is ignored for built-ins. Unknown names fall through to
// dynamic loading when opts.Loader is set: name is the module to load,
// args[0] the symbol to resolve, args[1:] the argument list forwarded to the
// loaded curve's Initialize. A nil opts is DefaultOptions().
//
// Every failure is a configuration error; see the package error policy.
// Complexity: O(1) for built-ins; dynamic resolution is dominated by the
// loader and the optional self-check (O(SelfCheckSamples) evaluations).
func Resolve(name string, args curve.ArgumentList, yOptimum, width float64, opts *Options) (curve.Curve, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if shape, ok := builtinAliases[strings.ToLower(name)]; ok {
		b, err := curve.New(shape, yOptimum, width)
		if err != nil {
			return nil, err
		}

		return b, nil
	}

	if o.Loader == nil {
		return nil, fmt.Errorf("weightfn: %q: %w; %w", name, ErrUnknownFunction, ErrNoDynamicSupport)
	}

	return resolveDynamic(name, args, yOptimum, width, o)
}

// resolveDynamic performs steps 3a–3e of the resolution algorithm: split the
// argument list into symbol + user arguments, load and wrap the module,
// initialize the curve, optionally self-check it.
func resolveDynamic(name string, args curve.ArgumentList, yOptimum, width float64, o Options) (curve.Curve, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("weightfn: %q: %w; %w", name, ErrUnknownFunction, ErrNoSymbolArgument)
	}
	symbol, userArgs := args[0], args[1:]

	adapter, err := dynload.NewAdapter(o.Loader, name, symbol)
	if err != nil {
		return nil, fmt.Errorf("weightfn: %w", err)
	}

	if err = adapter.Initialize(yOptimum, width, userArgs); err != nil {
		_ = adapter.Close()

		return nil, fmt.Errorf("weightfn: %w", err)
	}

	if o.SelfCheck {
		if err = selfCheck(adapter, o.SelfCheckSamples); err != nil {
			_ = adapter.Close()

			return nil, fmt.Errorf("weightfn: weight function %q in module %q: %w", symbol, name, err)
		}
	}

	return adapter, nil
}

// selfCheck samples the curve over a uniform grid and converts any
// out-of-range result into ErrSelfCheck.
func selfCheck(c curve.Curve, samples int) error {
	if samples < 2 {
		samples = DefaultSelfCheckSamples
	}

	ok, faults, err := diag.Check(c, samples)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%d of %d samples out of range: %w", faults, samples, ErrSelfCheck)
	}

	return nil
}
