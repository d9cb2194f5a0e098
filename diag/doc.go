// Package diag samples exposure weight curves over a uniform grid for
// offline inspection and range validation.
//
// What:
//
//   - Dump prints one "index x weight" line per sample — feed it to gnuplot
//     or a spreadsheet to eyeball a curve's shape.
//   - Check evaluates the same grid in parallel and counts faults: samples
//     whose weight falls outside [0,1) (NaN included). It validates range
//     only, never shape — a lopsided curve with in-range values passes.
//
// Concurrency:
//
//	Check fans the grid out across CPUs, so the curve's Evaluate must be
//	safe under concurrent invocation (it is for every curve this module
//	produces; user-supplied script curves are bound by the same contract).
//	The fault counter is atomic; no other synchronization is needed since
//	workers only read curve state. A panicking curve is recovered and
//	surfaced as an error instead of taking the process down.
//
// Errors:
//
//   - ErrTooFewSamples: both operations need n ≥ 2 so that the grid spans
//     [0,1] with x = i/(n−1).
package diag
