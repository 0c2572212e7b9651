// Package hierarchical implements the recursive hierarchical checkpoint
// enumerator: k slots, each bound to one level of the binomial growth
// sequences of package sequence.
//
// Slot j (0 is the outermost) walks the level m = k-j sequence
//
//	n_m(0)=0, n_m(1)=1, n_m(i)=C(m+i-1, m)
//
// and the current position is always the sum of the slot values:
//
//	pos = n_k(i_0) + n_{k-1}(i_1) + … + n_1(i_{k-1})
//
// The partial sums P_0 ≤ P_1 ≤ … ≤ P_{k-1} = pos are the checkpoints held
// in memory, with the origin 0 held implicitly.
//
// Cost model:
//
//   - Next: one operation for the raw step. Every re-derived slot lies at
//     or below the new cursor, which the raw step has just reached, so a
//     forward move never replays.
//   - Prev: the deepest slot with a nonzero index moves down by one and
//     the deeper slots expand again from the top of their sequences. The
//     target pos-1 is rebuilt by replaying from the nearest checkpoint held
//     before the move, the sum of the slots outer to the one that moved;
//     the new checkpoints are laid down on the way.
//
// A full cycle costs O(n^{1+1/k}) operations.
package hierarchical
