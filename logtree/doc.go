// Package logtree implements the logarithmic binary-tree enumerator.
//
// The positions 1..n are arranged in a static tree of depths:
//
//	depth 0: powers of two up to n, plus n itself
//	depth d: midpoints of adjacent positions already placed at depths < d,
//	         with the origin 0 acting as a left boundary
//
// The enumerator keeps a FIFO Window of at most k checkpoints. The forward
// sweep drops checkpoints on shallow nodes; a backward step that loses its
// checkpoint replays from the nearest one still held and bisects the gap
// with the shallowest tree nodes, laying down new checkpoints as it goes.
//
// With k = ⌈log2 n⌉ (DefaultWindow) a full cycle costs O(n log n)
// operations with O(log n) memory.
package logtree
