package dynload

import (
	"fmt"
	"go/parser"
	"go/token"
	"math"
	"os"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/katalvlaran/expoweight/curve"
)

// Constructor is the contract a script must export under the resolved
// symbol: invoked once with the numeric parameters and the uninterpreted
// argument list, it returns the evaluation closure or a configuration error.
type Constructor = func(yOptimum, width float64, args []string) (func(float64) float64, error)

// defaultAllowedImports is the stdlib whitelist scripts may import. Weight
// curves are pure math; nothing here can touch the filesystem, the network,
// or spawn processes.
var defaultAllowedImports = []string{
	"errors",
	"fmt",
	"math",
	"sort",
	"strconv",
	"strings",
}

// ScriptOption customizes a ScriptLoader.
type ScriptOption func(*ScriptLoader)

// WithAllowedImports replaces the default import whitelist. Passing no
// packages forbids all imports.
func WithAllowedImports(pkgs ...string) ScriptOption {
	return func(l *ScriptLoader) {
		l.allowed = make(map[string]bool, len(pkgs))
		for _, p := range pkgs {
			l.allowed[p] = true
		}
	}
}

// ScriptLoader loads weight curves from Go source files interpreted at
// runtime. Each Load spins up a fresh interpreter, so modules are isolated
// from each other and from the host program.
type ScriptLoader struct {
	allowed map[string]bool
}

var _ Loader = (*ScriptLoader)(nil)

// NewScriptLoader constructs a loader with the default stdlib whitelist.
func NewScriptLoader(opts ...ScriptOption) *ScriptLoader {
	l := &ScriptLoader{allowed: make(map[string]bool, len(defaultAllowedImports))}
	for _, p := range defaultAllowedImports {
		l.allowed[p] = true
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load reads and interprets the Go source file at name. The file's imports
// are validated against the whitelist before a single line is evaluated.
func (l *ScriptLoader) Load(name string) (Module, error) {
	src, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}

	pkgName, err := l.validate(name, src)
	if err != nil {
		return nil, err
	}

	i := interp.New(interp.Options{})
	if err = i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("loading interpreter stdlib: %w", err)
	}
	if _, err = i.Eval(string(src)); err != nil {
		return nil, fmt.Errorf("evaluating script: %w", err)
	}

	return &scriptModule{interp: i, pkg: pkgName}, nil
}

// validate parses the script's import clause and package name without
// evaluating anything; returns the package name used to qualify bare symbols.
func (l *ScriptLoader) validate(name string, src []byte) (string, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name, src, parser.ImportsOnly)
	if err != nil {
		return "", fmt.Errorf("parsing script: %w", err)
	}

	for _, imp := range f.Imports {
		path := strings.Trim(imp.Path.Value, `"`)
		if !l.allowed[path] {
			return "", fmt.Errorf("import %q: %w", path, ErrForbiddenImport)
		}
	}

	return f.Name.Name, nil
}

// scriptModule is one interpreted script. Close drops the interpreter; yaegi
// has no explicit unload, so releasing the reference is the whole release.
type scriptModule struct {
	interp *interp.Interpreter
	pkg    string
}

func (m *scriptModule) Resolve(symbol string) (curve.Curve, error) {
	if m.interp == nil {
		return nil, ErrModuleClosed
	}

	// bare symbols are qualified with the script's own package name
	if !strings.Contains(symbol, ".") {
		symbol = m.pkg + "." + symbol
	}

	v, err := m.interp.Eval(symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSymbolNotFound, err)
	}

	ctor, ok := v.Interface().(Constructor)
	if !ok {
		return nil, fmt.Errorf("%w: symbol %q has type %s", ErrBadSymbolType, symbol, v.Type())
	}

	return &scriptCurve{ctor: ctor}, nil
}

func (m *scriptModule) Close() error {
	m.interp = nil

	return nil
}

// scriptCurve adapts a script constructor to the curve capability. The
// evaluation closure is written exactly once, by Initialize, before any
// concurrent Evaluate begins (the caller's happens-before contract), so
// Evaluate reads it without synchronization.
type scriptCurve struct {
	ctor Constructor
	eval func(float64) float64
}

var _ curve.Curve = (*scriptCurve)(nil)

func (c *scriptCurve) Initialize(yOptimum, width float64, args curve.ArgumentList) error {
	eval, err := c.ctor(yOptimum, width, args)
	if err != nil {
		return err
	}
	if eval == nil {
		return fmt.Errorf("%w: constructor returned a nil evaluator", ErrBadSymbolType)
	}
	c.eval = eval

	return nil
}

// Evaluate returns NaN when the curve was never initialized; the range
// checker counts NaN as a fault, so the misuse cannot pass unnoticed.
func (c *scriptCurve) Evaluate(y float64) float64 {
	if c.eval == nil {
		return math.NaN()
	}

	return c.eval(y)
}
