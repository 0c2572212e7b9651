// Package stack implements the unbounded baseline enumerator: every
// forward step pushes the reached position and every backward step pops
// it, so a full cycle costs exactly 2n operations with O(n) memory.
package stack

import (
	"fmt"

	"github.com/katalvlaran/rewind/walk"
)

// Enumerator saves every position it reaches.
type Enumerator struct {
	n     int
	saved []int
	ops   walk.Counter
}

var _ walk.Enumerator = (*Enumerator)(nil)

// New returns an Enumerator over [0, n].
//
// Errors: walk.ErrInvalidArgument if n < 0.
func New(n int) (*Enumerator, error) {
	if n < 0 {
		return nil, fmt.Errorf("stack: %w: n=%d must be non-negative", walk.ErrInvalidArgument, n)
	}

	return &Enumerator{n: n, saved: make([]int, 1, n+1)}, nil
}

// Next pushes the next position. It returns false at n.
func (e *Enumerator) Next() bool {
	p := e.Position()
	if p == e.n {
		return false
	}
	e.saved = append(e.saved, p+1)
	e.ops.Add(1)

	return true
}

// Prev pops the current position. It returns false at 0.
func (e *Enumerator) Prev() bool {
	if len(e.saved) == 1 {
		return false
	}
	e.saved = e.saved[:len(e.saved)-1]
	e.ops.Add(1)

	return true
}

// Position returns the top of the stack.
func (e *Enumerator) Position() int { return e.saved[len(e.saved)-1] }

// OperationCount returns the operations charged so far.
func (e *Enumerator) OperationCount() uint64 { return e.ops.Value() }

// Depth returns the number of saved states beyond the origin.
func (e *Enumerator) Depth() int { return len(e.saved) - 1 }

// Metrics reports the operations so far against 2n; K is the peak number
// of saved states, n.
func (e *Enumerator) Metrics() walk.Metrics {
	return walk.NewMetrics(e.n, e.n, e.ops.Value(), 2*float64(e.n))
}

// RunFullCycle walks to n and back to 0. See walk.RunFullCycle.
func (e *Enumerator) RunFullCycle() error {
	if err := walk.RunFullCycle(e); err != nil {
		return fmt.Errorf("stack: %w", err)
	}

	return nil
}
