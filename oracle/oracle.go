package oracle

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Oracle owns the memo table of T(n,k) and of both split tables.
//
// Layout: cost[k][n], left[k][n], right[k][n]. All rows are extended
// together, so after a successful grow every row has the same length and
// every cell (k', n') with k' ≤ k, n' ≤ n is final.
type Oracle struct {
	cost  [][]Cost
	left  [][]int
	right [][]int
	log   zerolog.Logger
	err   error
}

// New returns an empty Oracle. Invalid options are reported by the first
// query as ErrOptionViolation.
func New(opts ...Option) *Oracle {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	o := &Oracle{log: cfg.Logger, err: cfg.err}
	if o.err == nil && (cfg.PreallocN > 0 || cfg.PreallocK > 0) {
		o.cost = make([][]Cost, 0, cfg.PreallocK+1)
		o.left = make([][]int, 0, cfg.PreallocK+1)
		o.right = make([][]int, 0, cfg.PreallocK+1)
		for k := 0; k <= cfg.PreallocK; k++ {
			o.cost = append(o.cost, make([]Cost, 0, cfg.PreallocN+1))
			o.left = append(o.left, make([]int, 0, cfg.PreallocN+1))
			o.right = append(o.right, make([]int, 0, cfg.PreallocN+1))
		}
	}

	return o
}

// T returns the optimal replay cost for n steps and k slots.
//
// Errors: ErrOptionViolation, ErrInvalidArgument (n < 0 or k < 0),
// ErrOverflow.
//
// Complexity: O(1) for a filled cell or for k ≥ n; otherwise the cost of
// growing the table to (n, k).
func (o *Oracle) T(n, k int) (Cost, error) {
	if err := o.check(n, k); err != nil {
		return 0, err
	}
	switch {
	case n == 0:
		return 0, nil
	case k == 0:
		return Infinity, nil
	case k >= n:
		// T(m,j) ≥ m for every m, and x=1 reaches n via T(n-1,k-1) = n-1.
		return Cost(n), nil
	}
	if err := o.grow(n, k); err != nil {
		return 0, err
	}

	return o.cost[k][n], nil
}

// SplitLeft returns the smallest x attaining T(n,k). ok is false when the
// split is undefined (n = 0 or k = 0).
func (o *Oracle) SplitLeft(n, k int) (x int, ok bool, err error) {
	return o.split(n, k, false)
}

// SplitRight returns the largest x attaining T(n,k). ok is false when the
// split is undefined (n = 0 or k = 0). SplitLeft < SplitRight exactly when
// the optimum is not unique.
func (o *Oracle) SplitRight(n, k int) (x int, ok bool, err error) {
	return o.split(n, k, true)
}

func (o *Oracle) split(n, k int, rightmost bool) (int, bool, error) {
	if err := o.check(n, k); err != nil {
		return 0, false, err
	}
	if n == 0 || k == 0 {
		return 0, false, nil
	}
	if k >= n {
		// any x > 1 leaves T(x-1,k) ≥ 1 on top of x + T(n-x,k-1) ≥ n.
		return 1, true, nil
	}
	if err := o.grow(n, k); err != nil {
		return 0, false, err
	}
	if rightmost {
		return o.right[k][n], true, nil
	}

	return o.left[k][n], true, nil
}

// Candidates returns the recurrence value for every split point: element
// x-1 holds x + T(n-x,k-1) + T(x-1,k). Terms that are infinite make the
// candidate Infinity. An empty slice is returned for n = 0.
func (o *Oracle) Candidates(n, k int) ([]Cost, error) {
	if err := o.check(n, k); err != nil {
		return nil, err
	}

	var (
		out  = make([]Cost, n)
		a, b Cost
		v    Cost
		ok   bool
		err  error
	)
	if k == 0 {
		for i := range out {
			out[i] = Infinity
		}

		return out, nil
	}
	for x := 1; x <= n; x++ {
		if a, err = o.T(n-x, k-1); err != nil {
			return nil, err
		}
		if b, err = o.T(x-1, k); err != nil {
			return nil, err
		}
		if a.IsInf() || b.IsInf() {
			out[x-1] = Infinity
			continue
		}
		if v, ok = add(Cost(x), a); ok {
			v, ok = add(v, b)
		}
		if !ok {
			return nil, fmt.Errorf("%w: candidate x=%d of T(%d,%d)", ErrOverflow, x, n, k)
		}
		out[x-1] = v
	}

	return out, nil
}

// Tabulate fills every cell with n ≤ maxN and k ≤ maxK.
func (o *Oracle) Tabulate(maxN, maxK int) error {
	if err := o.check(maxN, maxK); err != nil {
		return err
	}

	return o.grow(maxN, maxK)
}

// check validates the pending option error and the argument signs.
func (o *Oracle) check(n, k int) error {
	if o.err != nil {
		return o.err
	}
	if n < 0 || k < 0 {
		return fmt.Errorf("%w: T(%d,%d)", ErrInvalidArgument, n, k)
	}

	return nil
}
