// Package rewind is a toolkit for walking a linear sequence of states
// forwards and backwards while holding only a bounded number of saved
// checkpoints, the core problem of reverse debugging and of reverse-mode
// differentiation.
//
// A forward step from state i to i+1 costs one operation. A backward step
// cannot undo anything: the previous state is rebuilt by replaying forward
// from the nearest saved checkpoint, and every replayed step costs one
// operation too.
//
// What is inside?
//
//	oracle/       — exact optimal cost T(n,k) of a full round trip, with splits and datasets
//	sequence/     — binomial level sequences C(m+i-1, m) that drive the hierarchical scheme
//	walk/         — the Enumerator contract, operation counter and full-cycle driver
//	hierarchical/ — k nested slots, O(n^{1+1/k}) operations per cycle
//	logtree/      — FIFO window over a static binary tree, O(n log n) with log n memory
//	stack/        — unbounded baseline, 2n operations and n saved states
//	report/       — CSV export, per-k series and log-log exponent fits
//	config/       — defaults, YAML file, REWIND_* environment and flags
//	cmd/rewind    — driver that writes every table and metric as CSV
//
// Quick example:
//
//	e, _ := hierarchical.New(1000, 3)
//	for e.Next() {
//	}
//	for e.Prev() {
//	}
//	fmt.Println(e.Metrics())
//
// All enumerators are single-goroutine values; the oracle memo may be
// reused for any number of queries from one goroutine.
package rewind
