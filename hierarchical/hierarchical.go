package hierarchical

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rewind/sequence"
	"github.com/katalvlaran/rewind/walk"
	"github.com/rs/zerolog"
)

// Enumerator walks [0, n] with k hierarchical checkpoint slots.
//
// It is not safe for concurrent use.
type Enumerator struct {
	n, k     int
	pos      int
	slots    []slot
	held     []int // checkpoints snapshot taken before a forward move
	ops      walk.Counter
	log      zerolog.Logger
	onReplay walk.ReplayFunc
}

var _ walk.Enumerator = (*Enumerator)(nil)

// New returns an Enumerator at position 0.
//
// Errors:
//   - walk.ErrInvalidArgument for n < 0, k < 0, or k = 0 with n > 0.
//   - sequence.ErrOverflow if a level sequence does not fit in uint64.
//
// Complexity: O(k · n^{1/k}) time and memory for the level sequences.
func New(n, k int, opts ...Option) (*Enumerator, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := walk.CheckRange(n, k); err != nil {
		return nil, fmt.Errorf("hierarchical: %w", err)
	}

	levels, err := sequence.Levels(n, k)
	if err != nil {
		return nil, fmt.Errorf("hierarchical: %w", err)
	}

	e := &Enumerator{
		n:        n,
		k:        k,
		slots:    make([]slot, k),
		held:     make([]int, k),
		log:      cfg.Logger,
		onReplay: cfg.OnReplay,
	}
	for j := range e.slots {
		e.slots[j].seq = levels[k-j]
	}

	return e, nil
}

// Next advances by one position. It returns false at n.
//
// Complexity: O(k) amortized for the seeks, O(k²) worst case for anchors.
func (e *Enumerator) Next() bool {
	if e.pos == e.n {
		return false
	}
	held := 0
	for j := range e.slots {
		held += e.slots[j].value()
		e.held[j] = held
	}
	e.pos++
	e.ops.Add(1)

	var (
		remaining = e.pos
		prefix    int
		old       int
	)
	for j := range e.slots {
		s := &e.slots[j]
		old = s.idx
		s.seek(remaining)
		prefix += s.value()
		remaining -= s.value()
		if s.idx != old {
			e.replay(e.anchor(prefix), prefix)
		}
	}

	return true
}

// Prev moves back by one position. It returns false at 0.
//
// Complexity: O(k · log n) for the seeks plus the charged replay.
func (e *Enumerator) Prev() bool {
	if e.pos == 0 {
		return false
	}
	target := e.pos - 1

	j := e.k - 1
	for j >= 0 && e.slots[j].idx == 0 {
		j--
	}
	if j < 0 {
		// unreachable while pos equals the slot sum
		e.pos = 0

		return true
	}

	anchor := 0
	for i := 0; i < j; i++ {
		anchor += e.slots[i].value()
	}
	e.slots[j].idx--

	remaining := target - anchor - e.slots[j].value()
	for i := j + 1; i < e.k; i++ {
		d := &e.slots[i]
		d.idx = d.last()
		d.seek(remaining)
		remaining -= d.value()
	}
	e.pos = target
	e.replay(anchor, target)

	return true
}

// anchor returns the nearest position at or below p that was reachable
// without replay: the origin, a checkpoint held before the move, or the
// live cursor.
func (e *Enumerator) anchor(p int) int {
	best := 0
	for _, h := range e.held {
		if h <= p && h > best {
			best = h
		}
	}
	if e.pos <= p && e.pos > best {
		best = e.pos
	}

	return best
}

func (e *Enumerator) replay(from, to int) {
	if to <= from {
		return
	}
	e.ops.Charge(from, to)
	e.log.Trace().Int("from", from).Int("to", to).Uint64("ops", e.ops.Value()).Msg("hierarchical: replay")
	e.onReplay(from, to)
}

// Position returns the current position.
func (e *Enumerator) Position() int { return e.pos }

// OperationCount returns the operations charged so far.
func (e *Enumerator) OperationCount() uint64 { return e.ops.Value() }

// Overflowed reports whether the operation counter saturated.
func (e *Enumerator) Overflowed() bool { return e.ops.Overflowed() }

// Checkpoints returns the absolute positions held by the slots, outermost
// first. The last element always equals Position.
func (e *Enumerator) Checkpoints() []int {
	out := make([]int, e.k)
	p := 0
	for j := range e.slots {
		p += e.slots[j].value()
		out[j] = p
	}

	return out
}

// Indices returns a copy of the slot indices, outermost first.
func (e *Enumerator) Indices() []int {
	out := make([]int, e.k)
	for j := range e.slots {
		out[j] = e.slots[j].idx
	}

	return out
}

// Level returns a copy of the sequence bound to slot j, or nil when j is
// out of range.
func (e *Enumerator) Level(j int) []uint64 {
	if j < 0 || j >= e.k {
		return nil
	}

	return append([]uint64(nil), e.slots[j].seq...)
}

// Metrics reports the operations so far against n^{1+1/k}.
func (e *Enumerator) Metrics() walk.Metrics {
	var bound float64
	if e.k > 0 {
		bound = math.Pow(float64(e.n), 1+1/float64(e.k))
	}

	return walk.NewMetrics(e.n, e.k, e.ops.Value(), bound)
}

// RunFullCycle walks to n and back to 0. See walk.RunFullCycle.
func (e *Enumerator) RunFullCycle() error {
	if err := walk.RunFullCycle(e); err != nil {
		return fmt.Errorf("hierarchical: %w", err)
	}

	return nil
}
