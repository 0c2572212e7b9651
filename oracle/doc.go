// Package oracle computes T(n,k), the provably optimal replay cost of a
// forward-then-backward traversal of n steps with k checkpoint slots.
//
// 🚀 What is T(n,k)?
//
//	Start with a checkpoint at position 0 and k slots. To visit 0..n
//	forward and then backward, place the next checkpoint x steps ahead
//	(cost x), solve the n-x positions beyond it with one slot fewer, then
//	come back and solve the x-1 positions behind it with all k slots:
//
//	  T(0,k) = 0
//	  T(n,0) = +∞                          (n > 0)
//	  T(n,k) = min_{x=1..n} x + T(n-x,k-1) + T(x-1,k)
//
//	The minimising x is the split point. When several x attain the
//	minimum the oracle reports both the left-most and the right-most one.
//
// ✨ Key features:
//   - explicit memo table owned by each *Oracle, filled by tabulation in
//     increasing n for every k (no recursion, no globals)
//   - lazy growth: a query extends the table only as far as it needs
//   - closed form T(n,k) = n for k ≥ n, without touching the table
//   - dataset helpers returning plain (n,k,T) tuples for export
//
// Performance:
//
//   - Time:   O(N²·K) to fill N×K cells, each scanning its split points
//   - Memory: O(N·K) for costs and both split tables
//
// The table is not synchronised; confine an *Oracle to one goroutine.
package oracle
