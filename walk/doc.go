// Package walk defines the shape shared by every bounded-memory enumerator
// in rewind, together with the operation counter and the full-cycle driver.
//
// 🚀 What is an enumerator?
//
//	An enumerator walks the positions 0..n one step at a time in both
//	directions. Stepping forward is a single operation. Stepping backward
//	is impossible in place: the enumerator restores the nearest checkpoint
//	below the target and replays forward from it, and every replayed step
//	is charged to the operation counter.
//
// ✨ Provided here:
//   - Enumerator — Next/Prev/Position/OperationCount
//   - Counter    — monotone, overflow-checked operation counter
//   - RunFullCycle — forward sweep to n, backward sweep to 0, with checks
//   - Metrics    — ops compared against a theoretical baseline
//
// Boundary conditions (Next at n, Prev at 0) are reported as a false
// result, never as an error: callers treat them as loop terminators.
package walk
