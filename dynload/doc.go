// Package dynload resolves user-supplied exposure weight curves from
// externally provided modules at runtime.
//
// What:
//
//   - Loader turns a module name into an opaque, exclusively-owned Module.
//   - Module resolves a named symbol into a curve.Curve and releases its
//     resources on Close.
//   - Adapter wraps (module, resolved curve) so the rest of the pipeline sees
//     an ordinary curve.Curve while the module handle's ownership stays
//     explicit.
//   - ScriptLoader is the shipped Loader: it interprets a Go source file with
//     yaegi and resolves a constructor function by symbol name.
//
// Module contract (the ABI boundary):
//
//	The script must export, under the requested symbol, a constructor
//
//	    func(yOptimum, width float64, args []string) (func(float64) float64, error)
//
//	Calling the constructor is the curve's Initialize step; the returned
//	closure is its Evaluate step and must be pure. The symbol may be given
//	qualified ("main.Sigmoid") or bare ("Sigmoid").
//
// Ownership & concurrency:
//
//   - A Module is exclusively owned by the Adapter that wraps it and is
//     released exactly once, on Adapter.Close.
//   - Curves resolved from a module become invalid once the module is
//     closed; using one afterwards is undefined.
//   - Loading and closing are not synchronized and must happen during
//     single-threaded setup, never concurrently with evaluation.
//
// Errors:
//
//   - ErrSymbolNotFound: the module exposes no such symbol.
//   - ErrBadSymbolType: the symbol is not the constructor contract above.
//   - ErrForbiddenImport: the script imports outside the stdlib whitelist.
//   - ErrModuleClosed: resolve attempted on a released module.
package dynload
