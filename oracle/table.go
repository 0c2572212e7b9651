package oracle

import "fmt"

// grow extends the memo table so that cell (n, k) and everything below it
// is filled.
//
// Rows are processed in increasing k and each row in increasing n: cell
// (k, n) reads row k-1 up to n-1, already extended in this pass, and row k
// up to n-1, filled just before it. Existing cells are never recomputed.
func (o *Oracle) grow(n, k int) error {
	var (
		needRows = k + 1
		needCols = n + 1
	)
	if len(o.cost) >= needRows && len(o.cost[len(o.cost)-1]) >= needCols {
		return nil
	}
	rows := max(len(o.cost), needRows)
	cols := needCols
	if len(o.cost) > 0 {
		cols = max(cols, len(o.cost[0]))
	}

	var err error
	for kk := 0; kk < rows; kk++ {
		if kk == len(o.cost) {
			o.cost = append(o.cost, make([]Cost, 0, cols))
			o.left = append(o.left, make([]int, 0, cols))
			o.right = append(o.right, make([]int, 0, cols))
		}
		for nn := len(o.cost[kk]); nn < cols; nn++ {
			if err = o.fill(kk, nn); err != nil {
				return err
			}
		}
	}
	o.log.Debug().Int("rows", rows).Int("cols", cols).Msg("oracle: table grown")

	return nil
}

// fill appends cell (k, n) to row k. Row k must hold exactly n cells and
// row k-1 at least n.
func (o *Oracle) fill(k, n int) error {
	if n == 0 || k == 0 {
		c := Cost(0)
		if n > 0 {
			c = Infinity
		}
		o.cost[k] = append(o.cost[k], c)
		o.left[k] = append(o.left[k], 0)
		o.right[k] = append(o.right[k], 0)

		return nil
	}

	var (
		prev    = o.cost[k-1]
		row     = o.cost[k]
		best    = Infinity
		l, r    int
		a, b, v Cost
		ok      bool
	)
	for x := 1; x <= n; x++ {
		a, b = prev[n-x], row[x-1]
		if a.IsInf() || b.IsInf() {
			continue
		}
		if v, ok = add(Cost(x), a); ok {
			v, ok = add(v, b)
		}
		if !ok {
			return fmt.Errorf("%w: T(%d,%d) at x=%d", ErrOverflow, n, k, x)
		}
		switch {
		case v < best:
			best, l, r = v, x, x
		case v == best:
			r = x
		}
	}
	o.cost[k] = append(o.cost[k], best)
	o.left[k] = append(o.left[k], l)
	o.right[k] = append(o.right[k], r)

	return nil
}
