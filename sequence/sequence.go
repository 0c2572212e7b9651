package sequence

import (
	"fmt"
	"math"
)

// Generate returns the level-m sequence 0, C(m,m), C(m+1,m), … stopping
// at the first value that reaches or exceeds limit. A limit of 0 yields
// the single-element sequence [0].
//
// Errors:
//   - ErrInvalidArgument if m < 1 or limit < 0.
//   - ErrOverflow if a term does not fit in uint64.
//   - ErrUnbounded if limit+1 terms were not enough (cannot happen for
//     valid m, checked before the sequence is handed out).
//
// Complexity: O(len · m) time, O(len) memory.
func Generate(m, limit int) ([]uint64, error) {
	if m < 1 {
		return nil, fmt.Errorf("%w: level m=%d must be at least 1", ErrInvalidArgument, m)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit=%d must be non-negative", ErrInvalidArgument, limit)
	}

	var (
		target = uint64(limit)
		seq    = make([]uint64, 1, 8)
		v      uint64
		err    error
	)
	for i := 1; seq[len(seq)-1] < target; i++ {
		// C(m+i-1, m) ≥ i, so limit+1 terms always cover the limit.
		if i > limit+1 {
			return nil, fmt.Errorf("%w: level %d, limit %d", ErrUnbounded, m, limit)
		}
		if v, err = Binomial(m+i-1, m); err != nil {
			return nil, fmt.Errorf("%w: level %d, term %d", err, m, i)
		}
		seq = append(seq, v)
	}

	return seq, nil
}

// Gap returns the difference between the last two values of seq, or 0 for
// a sequence with fewer than two values. For the increasing sequences built
// here it is also the largest gap.
func Gap(seq []uint64) uint64 {
	if len(seq) < 2 {
		return 0
	}

	return seq[len(seq)-1] - seq[len(seq)-2]
}

// Levels builds the nested sequence table for a range of n positions and k
// levels. levels[m] holds the level-m sequence for m = 1..k; levels[0] is
// nil. The outermost level k covers n, and every level m-1 covers the last
// gap of level m, which is the widest span it can be asked to resolve.
//
// Errors: those of Generate, and ErrInvalidArgument for negative n or k.
func Levels(n, k int) ([][]uint64, error) {
	if n < 0 || k < 0 {
		return nil, fmt.Errorf("%w: n=%d, k=%d", ErrInvalidArgument, n, k)
	}

	var (
		levels = make([][]uint64, k+1)
		limit  = n
		seq    []uint64
		gap    uint64
		err    error
	)
	for m := k; m >= 1; m-- {
		if seq, err = Generate(m, limit); err != nil {
			return nil, err
		}
		levels[m] = seq
		if gap = Gap(seq); gap > math.MaxInt {
			return nil, fmt.Errorf("%w: level %d gap %d", ErrOverflow, m, gap)
		}
		limit = int(gap)
	}

	return levels, nil
}
