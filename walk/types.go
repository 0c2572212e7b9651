package walk

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all enumerator packages.
var (
	// ErrInvalidArgument indicates a negative size, or a zero checkpoint
	// budget for a non-empty range. Package-specific errors wrap it.
	ErrInvalidArgument = errors.New("walk: invalid argument")

	// ErrCounterOverflow indicates the operation counter wrapped past 2^64-1.
	ErrCounterOverflow = errors.New("walk: operation counter overflow")

	// ErrCycleBroken indicates that a full cycle did not return to position 0.
	ErrCycleBroken = errors.New("walk: full cycle did not return to origin")
)

// Enumerator is the bidirectional cursor every scheme implements.
//
// Next and Prev return false when the move would leave [0, n]; the
// position is left untouched in that case.
type Enumerator interface {
	Next() bool
	Prev() bool
	Position() int
	OperationCount() uint64
}

// ReplayFunc observes a charged replay from a restored checkpoint up to a
// target position; from < to always.
type ReplayFunc func(from, to int)

// Metrics compares the operations spent by a full cycle against the
// asymptotic baseline of its scheme.
type Metrics struct {
	N     int     // range length
	K     int     // checkpoint budget
	Ops   uint64  // operations after the cycle
	Bound float64 // theoretical baseline for (N, K)
	Ratio float64 // Ops / Bound, 0 when Bound is 0
}

// NewMetrics fills Ratio from ops and bound.
func NewMetrics(n, k int, ops uint64, bound float64) Metrics {
	m := Metrics{N: n, K: k, Ops: ops, Bound: bound}
	if bound > 0 {
		m.Ratio = float64(ops) / bound
	}

	return m
}

// String renders the summary line printed by the driver.
func (m Metrics) String() string {
	return fmt.Sprintf("n=%d k=%d ops=%d bound=%.0f ratio=%.3f", m.N, m.K, m.Ops, m.Bound, m.Ratio)
}

// CheckRange validates (n, k) for constructors: n >= 0, k >= 0, and k > 0
// whenever n > 0.
func CheckRange(n, k int) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: n=%d must be non-negative", ErrInvalidArgument, n)
	case k < 0:
		return fmt.Errorf("%w: k=%d must be non-negative", ErrInvalidArgument, k)
	case k == 0 && n > 0:
		return fmt.Errorf("%w: k=0 cannot traverse n=%d", ErrInvalidArgument, n)
	}

	return nil
}
