package oracle

import (
	"fmt"
	"math/bits"
)

// Row is one (n, k, T(n,k)) tuple.
type Row struct {
	N, K int
	Cost Cost
}

// SplitRow is one (n, k, x, T(n,k)) tuple with a unique optimal split x.
type SplitRow struct {
	N, K  int
	Split int
	Cost  Cost
}

// GainRow is one (n, k, T(n,k-1) - T(n,k)) tuple: what the k-th slot saves.
type GainRow struct {
	N, K int
	Gain Cost
}

// Rows returns T(n,k) for k = 1..maxK (outer) and n = 0..maxN (inner).
func (o *Oracle) Rows(maxN, maxK int) ([]Row, error) {
	if err := o.Tabulate(maxN, maxK); err != nil {
		return nil, err
	}

	var (
		out = make([]Row, 0, maxK*(maxN+1))
		c   Cost
		err error
	)
	for k := 1; k <= maxK; k++ {
		for n := 0; n <= maxN; n++ {
			if c, err = o.T(n, k); err != nil {
				return nil, err
			}
			out = append(out, Row{N: n, K: k, Cost: c})
		}
	}

	return out, nil
}

// UniqueSplitRows returns (n, k, x, T) for k = 1..maxK, n = 1..maxN,
// keeping only the cells whose left and right splits agree.
func (o *Oracle) UniqueSplitRows(maxN, maxK int) ([]SplitRow, error) {
	if err := o.Tabulate(maxN, maxK); err != nil {
		return nil, err
	}

	var (
		out         []SplitRow
		left, right int
		c           Cost
		err         error
	)
	for k := 1; k <= maxK; k++ {
		for n := 1; n <= maxN; n++ {
			if left, _, err = o.SplitLeft(n, k); err != nil {
				return nil, err
			}
			if right, _, err = o.SplitRight(n, k); err != nil {
				return nil, err
			}
			if left != right {
				continue
			}
			if c, err = o.T(n, k); err != nil {
				return nil, err
			}
			out = append(out, SplitRow{N: n, K: k, Split: left, Cost: c})
		}
	}

	return out, nil
}

// LogKRows returns T(n, max(⌊log2 n⌋, 1)) for n = 0..maxN.
func (o *Oracle) LogKRows(maxN int) ([]Row, error) {
	if maxN < 0 {
		return nil, fmt.Errorf("%w: maxN=%d", ErrInvalidArgument, maxN)
	}

	var (
		out = make([]Row, 0, maxN+1)
		k   int
		c   Cost
		err error
	)
	for n := 0; n <= maxN; n++ {
		k = max(bits.Len(uint(n))-1, 1)
		if c, err = o.T(n, k); err != nil {
			return nil, err
		}
		out = append(out, Row{N: n, K: k, Cost: c})
	}

	return out, nil
}

// DiagonalRows returns T(n, n) for n = 0..maxN.
func (o *Oracle) DiagonalRows(maxN int) ([]Row, error) {
	if maxN < 0 {
		return nil, fmt.Errorf("%w: maxN=%d", ErrInvalidArgument, maxN)
	}

	var (
		out = make([]Row, 0, maxN+1)
		c   Cost
		err error
	)
	for n := 0; n <= maxN; n++ {
		if c, err = o.T(n, n); err != nil {
			return nil, err
		}
		out = append(out, Row{N: n, K: n, Cost: c})
	}

	return out, nil
}

// GainRows returns T(n,k-1) - T(n,k) for k = max(minK,1)..maxK and
// n = 1..maxN. The gain of the first slot is Infinity.
func (o *Oracle) GainRows(maxN, minK, maxK int) ([]GainRow, error) {
	if err := o.Tabulate(maxN, maxK); err != nil {
		return nil, err
	}

	var (
		out        []GainRow
		less, more Cost
		err        error
	)
	for k := max(minK, 1); k <= maxK; k++ {
		for n := 1; n <= maxN; n++ {
			if less, err = o.T(n, k-1); err != nil {
				return nil, err
			}
			if more, err = o.T(n, k); err != nil {
				return nil, err
			}
			g := Infinity
			if !less.IsInf() {
				g = less - more
			}
			out = append(out, GainRow{N: n, K: k, Gain: g})
		}
	}

	return out, nil
}
