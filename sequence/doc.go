// Package sequence generates the binomial growth sequences that place
// checkpoints at each level of the hierarchical scheme.
//
// For a level m ≥ 1 the sequence is
//
//	n_m(0) = 0,  n_m(i) = C(m+i-1, m)   (i = 1, 2, …)
//
// so level 1 is 0,1,2,3,…, level 2 is 0,1,3,6,10,… and so on. The gap
// between two consecutive values of level m is itself a value of level
// m-1: n_m(i+1) - n_m(i) = n_{m-1}(i+1). This is what lets the levels nest:
// whatever remains after the outer level has chosen its index is strictly
// smaller than the gap it sits in, and the next level down covers exactly
// that gap.
//
// Everything here is computed in uint64 with checked 128-bit intermediates;
// a value that does not fit is reported as ErrOverflow instead of wrapping.
package sequence
