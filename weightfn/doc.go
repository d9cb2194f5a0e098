// Package weightfn resolves exposure weight functions by name and manages
// the pipeline's single active weight curve.
//
// What:
//
//   - Resolve maps a case-insensitive name to one of the five built-in
//     curves, or — when a Loader is configured — to a user-supplied curve
//     loaded from an external module.
//   - Slot holds the at-most-one active curve: installing a new one releases
//     the previous instance first, so ownership transfer is explicit and
//     no two active curves ever coexist.
//
// Name resolution:
//
//	gauss|gaussian, lorentz|lorentzian, halfsine|half-sine,
//	fullsine|full-sine, bisquare|bi-square — all spellings
//	case-insensitive. Unrecognized names fall through to dynamic loading:
//	the name becomes the module, the first argument the symbol, the rest
//	the argument list handed to the curve's Initialize.
//
// Error policy:
//
//	Resolution happens once, at pipeline setup, so every failure here is a
//	configuration error. The package reports it and never exits by itself;
//	the top-level caller (see cmd/expoweight) decides that a run without a
//	usable weight function cannot proceed and terminates non-zero.
//
// Errors:
//
//   - ErrUnknownFunction: name matches no built-in alias.
//   - ErrNoDynamicSupport: unknown name and no Loader configured.
//   - ErrNoSymbolArgument: dynamic resolution requested without a symbol.
//   - ErrSelfCheck: a freshly loaded curve failed the optional range check.
package weightfn
