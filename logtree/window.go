package logtree

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
)

// Window is a FIFO of at most Cap checkpoint positions. Inserting into a
// full window evicts the oldest entry. The origin 0 is never stored but
// always counts as held by Floor.
type Window struct {
	size  int
	order []int // oldest first
	set   *roaring.Bitmap
}

// NewWindow returns an empty window of capacity k.
//
// Errors: ErrInvalidArgument if k < 0 or k > MaxN.
func NewWindow(k int) (*Window, error) {
	if k < 0 || uint64(k) > MaxN {
		return nil, fmt.Errorf("%w: window size k=%d", ErrInvalidArgument, k)
	}

	return &Window{size: k, order: make([]int, 0, min(k, 64)), set: roaring.New()}, nil
}

// Insert adds p. It returns the evicted position and true when the window
// was full. Inserting a held position, a non-positive one or into a
// zero-capacity window does nothing.
func (w *Window) Insert(p int) (evicted int, ok bool) {
	if w.size == 0 || p <= 0 || w.Contains(p) {
		return 0, false
	}
	if len(w.order) == w.size {
		evicted, ok = w.order[0], true
		w.order = append(w.order[:0], w.order[1:]...)
		w.set.Remove(uint32(evicted))
	}
	w.order = append(w.order, p)
	w.set.Add(uint32(p))

	return evicted, ok
}

// Remove drops p and reports whether it was held.
func (w *Window) Remove(p int) bool {
	if !w.Contains(p) {
		return false
	}
	w.set.Remove(uint32(p))
	for i, q := range w.order {
		if q == p {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}

	return true
}

// Contains reports whether p is held.
func (w *Window) Contains(p int) bool {
	return p > 0 && uint64(p) <= MaxN && w.set.Contains(uint32(p))
}

// Floor returns the largest held position <= p, or 0 (the origin).
func (w *Window) Floor(p int) int {
	if p <= 0 || w.set.IsEmpty() {
		return 0
	}
	q := uint32(MaxN)
	if uint64(p) < MaxN {
		q = uint32(p)
	}
	r := w.set.Rank(q)
	if r == 0 {
		return 0
	}
	v, err := w.set.Select(uint32(r - 1))
	if err != nil {
		return 0
	}

	return int(v)
}

// Len returns the number of held positions.
func (w *Window) Len() int { return len(w.order) }

// Cap returns the window capacity.
func (w *Window) Cap() int { return w.size }

// Positions returns the held positions, oldest first.
func (w *Window) Positions() []int {
	return append([]int(nil), w.order...)
}
