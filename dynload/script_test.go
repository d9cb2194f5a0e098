package dynload_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/expoweight/curve"
	"github.com/katalvlaran/expoweight/dynload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript drops src into a temp file and returns its path.
func writeScript(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

// lorentzScript is a well-behaved user curve: a scaled Lorentzian bump whose
// tail floor comes from the argument list.
const lorentzScript = `package main

import (
	"strconv"
	"strings"
)

func Lorentz(yOptimum, width float64, args []string) (func(float64) float64, error) {
	floor := 0.0
	for _, a := range args {
		if v, ok := strings.CutPrefix(a, "floor="); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, err
			}
			floor = f
		}
	}
	return func(y float64) float64 {
		z := (y - yOptimum) / width
		w := 0.9 / (1 + z*z)
		if w < floor {
			w = floor
		}
		return w
	}, nil
}
`

// TestScriptLoader_LoadAndEvaluate exercises the full dynamic path: load a
// script, resolve its constructor, initialize with arguments, evaluate.
func TestScriptLoader_LoadAndEvaluate(t *testing.T) {
	path := writeScript(t, "lorentz.go", lorentzScript)

	a, err := dynload.NewAdapter(dynload.NewScriptLoader(), path, "Lorentz")
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.Initialize(0.5, 0.2, curve.ArgumentList{"floor=0.2"}))

	assert.InDelta(t, 0.9, a.Evaluate(0.5), 1e-12, "peak at the optimum")
	assert.Greater(t, a.Evaluate(0.5), a.Evaluate(0.7), "decay away from the optimum")
	assert.InDelta(t, 0.2, a.Evaluate(0.0), 1e-12, "far tail clamped to the floor argument")
}

// TestScriptLoader_QualifiedSymbol verifies that both bare and
// package-qualified symbol spellings resolve.
func TestScriptLoader_QualifiedSymbol(t *testing.T) {
	path := writeScript(t, "lorentz.go", lorentzScript)
	loader := dynload.NewScriptLoader()

	for _, symbol := range []string{"Lorentz", "main.Lorentz"} {
		a, err := dynload.NewAdapter(loader, path, symbol)
		require.NoError(t, err, "symbol %q", symbol)
		require.NoError(t, a.Initialize(0.5, 0.2, nil))
		assert.InDelta(t, 0.9, a.Evaluate(0.5), 1e-12)
		require.NoError(t, a.Close())
	}
}

// TestScriptLoader_ConstructorError verifies a failing constructor surfaces
// as an Initialize error carrying module and symbol context.
func TestScriptLoader_ConstructorError(t *testing.T) {
	path := writeScript(t, "lorentz.go", lorentzScript)

	a, err := dynload.NewAdapter(dynload.NewScriptLoader(), path, "Lorentz")
	require.NoError(t, err)
	defer a.Close()

	err = a.Initialize(0.5, 0.2, curve.ArgumentList{"floor=not-a-number"})
	require.Error(t, err, "unparseable argument must fail initialization")
	assert.Contains(t, err.Error(), `"Lorentz"`)
	assert.Contains(t, err.Error(), path)
}

// TestScriptLoader_MissingSymbol verifies ErrSymbolNotFound for absent names.
func TestScriptLoader_MissingSymbol(t *testing.T) {
	path := writeScript(t, "lorentz.go", lorentzScript)

	_, err := dynload.NewAdapter(dynload.NewScriptLoader(), path, "NoSuchCurve")
	assert.ErrorIs(t, err, dynload.ErrSymbolNotFound)
}

// TestScriptLoader_WrongSignature verifies ErrBadSymbolType when the symbol
// exists but is not a curve constructor.
func TestScriptLoader_WrongSignature(t *testing.T) {
	path := writeScript(t, "bad.go", `package main

func NotACurve(a, b int) int { return a + b }
`)

	_, err := dynload.NewAdapter(dynload.NewScriptLoader(), path, "NotACurve")
	assert.ErrorIs(t, err, dynload.ErrBadSymbolType)
}

// TestScriptLoader_ForbiddenImport verifies the import whitelist blocks
// scripts reaching outside pure computation.
func TestScriptLoader_ForbiddenImport(t *testing.T) {
	path := writeScript(t, "evil.go", `package main

import "os"

func Evil(yOptimum, width float64, args []string) (func(float64) float64, error) {
	os.Exit(3)
	return nil, nil
}
`)

	_, err := dynload.NewScriptLoader().Load(path)
	assert.ErrorIs(t, err, dynload.ErrForbiddenImport)
}

// TestScriptLoader_WhitelistOverride verifies WithAllowedImports replaces the
// default whitelist entirely.
func TestScriptLoader_WhitelistOverride(t *testing.T) {
	path := writeScript(t, "mathy.go", `package main

import "math"

func Cosine(yOptimum, width float64, args []string) (func(float64) float64, error) {
	return func(y float64) float64 {
		z := (y - yOptimum) / width
		if math.Abs(z) > 1 {
			return 0
		}
		return 0.5 * (1 + math.Cos(math.Pi*z)) * 0.99
	}, nil
}
`)

	// math is not on the restricted whitelist: load must fail
	_, err := dynload.NewScriptLoader(dynload.WithAllowedImports("strings")).Load(path)
	assert.ErrorIs(t, err, dynload.ErrForbiddenImport)

	// and succeed once math is permitted
	mod, err := dynload.NewScriptLoader(dynload.WithAllowedImports("math")).Load(path)
	require.NoError(t, err)
	require.NoError(t, mod.Close())
}

// TestScriptModule_ResolveAfterClose verifies ErrModuleClosed.
func TestScriptModule_ResolveAfterClose(t *testing.T) {
	path := writeScript(t, "lorentz.go", lorentzScript)

	mod, err := dynload.NewScriptLoader().Load(path)
	require.NoError(t, err)
	require.NoError(t, mod.Close())

	_, err = mod.Resolve("Lorentz")
	assert.ErrorIs(t, err, dynload.ErrModuleClosed)
}

// TestScriptLoader_MissingFile verifies a readable error for absent scripts.
func TestScriptLoader_MissingFile(t *testing.T) {
	_, err := dynload.NewScriptLoader().Load(filepath.Join(t.TempDir(), "absent.go"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading script")
}
