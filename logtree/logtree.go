package logtree

import (
	"fmt"

	"github.com/katalvlaran/rewind/walk"
	"github.com/rs/zerolog"
)

// Enumerator walks [0, n] with a window of k tree checkpoints.
//
// It is not safe for concurrent use.
type Enumerator struct {
	n, k     int
	pos      int
	fwdDepth int
	tree     *Tree
	window   *Window
	ops      walk.Counter
	log      zerolog.Logger
	onReplay walk.ReplayFunc
}

var _ walk.Enumerator = (*Enumerator)(nil)

// New returns an Enumerator at position 0 holding at most k checkpoints.
//
// Errors:
//   - ErrOptionViolation for an invalid Option.
//   - ErrInvalidArgument (wrapping walk.ErrInvalidArgument) for n < 0,
//     k < 0, k = 0 with n > 0, or n > MaxN.
//
// Complexity: O(n log n) to build the tree.
func New(n, k int, opts ...Option) (*Enumerator, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := walk.CheckRange(n, k); err != nil {
		return nil, fmt.Errorf("logtree: %w", err)
	}

	tree, err := BuildTree(n)
	if err != nil {
		return nil, err
	}
	window, err := NewWindow(k)
	if err != nil {
		return nil, err
	}

	return &Enumerator{
		n:        n,
		k:        k,
		fwdDepth: cfg.ForwardDepth,
		tree:     tree,
		window:   window,
		log:      cfg.Logger,
		onReplay: cfg.OnReplay,
	}, nil
}

// NewAuto is New with k = DefaultWindow(n).
func NewAuto(n int, opts ...Option) (*Enumerator, error) {
	return New(n, DefaultWindow(n), opts...)
}

// Next advances by one position and checkpoints it when it is a shallow
// enough tree node. It returns false at n.
//
// Complexity: O(ForwardDepth) plus O(k) for an eviction.
func (e *Enumerator) Next() bool {
	if e.pos == e.n {
		return false
	}
	e.pos++
	e.ops.Add(1)
	if d, ok := e.tree.Depth(e.pos); ok && d <= e.fwdDepth {
		e.window.Insert(e.pos)
	}

	return true
}

// Prev moves back by one position. It returns false at 0.
//
// The checkpoint on the current position, if any, is released. When the
// target is not held, it is rebuilt from the nearest held checkpoint below
// it; on the way every shallowest node between the replay front and the
// old position is checkpointed.
//
// Complexity: O(replay · MaxDepth · log n).
func (e *Enumerator) Prev() bool {
	if e.pos == 0 {
		return false
	}
	target := e.pos - 1
	e.window.Remove(e.pos)

	anchor := e.window.Floor(target)
	if anchor < target {
		e.ops.Charge(anchor, target)
		e.log.Trace().Int("from", anchor).Int("to", target).Uint64("ops", e.ops.Value()).Msg("logtree: replay")
		e.onReplay(anchor, target)

		for lo := anchor; lo < target; {
			p, ok := e.tree.Shallowest(lo, e.pos)
			if !ok {
				break
			}
			e.window.Insert(p)
			lo = p
		}
	}
	e.pos = target

	return true
}

// Position returns the current position.
func (e *Enumerator) Position() int { return e.pos }

// OperationCount returns the operations charged so far.
func (e *Enumerator) OperationCount() uint64 { return e.ops.Value() }

// Overflowed reports whether the operation counter saturated.
func (e *Enumerator) Overflowed() bool { return e.ops.Overflowed() }

// Tree returns the static tree.
func (e *Enumerator) Tree() *Tree { return e.tree }

// Checkpoints returns the held positions, oldest first.
func (e *Enumerator) Checkpoints() []int { return e.window.Positions() }

// WindowLen returns the number of held checkpoints.
func (e *Enumerator) WindowLen() int { return e.window.Len() }

// Metrics reports the operations so far against n·k.
func (e *Enumerator) Metrics() walk.Metrics {
	return walk.NewMetrics(e.n, e.k, e.ops.Value(), float64(e.n)*float64(e.k))
}

// RunFullCycle walks to n and back to 0. See walk.RunFullCycle.
func (e *Enumerator) RunFullCycle() error {
	if err := walk.RunFullCycle(e); err != nil {
		return fmt.Errorf("logtree: %w", err)
	}

	return nil
}
