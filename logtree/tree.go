package logtree

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring"
)

// Tree is the static depth assignment of positions 1..n. It is immutable
// after BuildTree and safe for concurrent reads.
type Tree struct {
	n      int
	levels []*roaring.Bitmap // levels[d] holds the positions of depth d
	all    *roaring.Bitmap
}

// BuildTree assigns a depth to every position in 1..n.
//
// Errors: ErrInvalidArgument if n < 0 or n > MaxN.
//
// Complexity: O(n log n) time, O(n) memory.
func BuildTree(n int) (*Tree, error) {
	if n < 0 || uint64(n) > MaxN {
		return nil, fmt.Errorf("%w: tree size n=%d outside [0, %d]", ErrInvalidArgument, n, uint64(MaxN))
	}

	t := &Tree{n: n, all: roaring.New()}
	if n == 0 {
		t.levels = []*roaring.Bitmap{roaring.New()}

		return t, nil
	}

	var (
		level = roaring.New()
		cum   = []uint32{0}
		next  []uint32
	)
	for p := uint64(1); p <= uint64(n); p <<= 1 {
		level.Add(uint32(p))
	}
	level.Add(uint32(n))
	cum = append(cum, level.ToArray()...)

	for {
		t.levels = append(t.levels, level)
		t.all.Or(level)

		next = next[:0]
		for i := 1; i < len(cum); i++ {
			if cum[i]-cum[i-1] >= 2 {
				next = append(next, cum[i-1]+(cum[i]-cum[i-1])/2)
			}
		}
		if len(next) == 0 {
			break
		}
		level = roaring.BitmapOf(next...)
		cum = append(cum, next...)
		slices.Sort(cum)
	}

	return t, nil
}

// N returns the range length the tree was built for.
func (t *Tree) N() int { return t.n }

// Len returns the number of tree nodes; it equals N.
func (t *Tree) Len() int { return int(t.all.GetCardinality()) }

// MaxDepth returns the deepest level.
func (t *Tree) MaxDepth() int { return len(t.levels) - 1 }

// Contains reports whether p is a tree node.
func (t *Tree) Contains(p int) bool {
	return p >= 1 && p <= t.n && t.all.Contains(uint32(p))
}

// Depth returns the depth of p, or ok=false if p is not a node.
func (t *Tree) Depth(p int) (d int, ok bool) {
	if !t.Contains(p) {
		return 0, false
	}
	for d = range t.levels {
		if t.levels[d].Contains(uint32(p)) {
			return d, true
		}
	}

	return 0, false
}

// Level returns the positions of depth d in increasing order, or nil when
// d is out of range.
func (t *Tree) Level(d int) []int {
	if d < 0 || d >= len(t.levels) {
		return nil
	}
	out := make([]int, 0, t.levels[d].GetCardinality())
	it := t.levels[d].Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// Shallowest returns the left-most node of minimum depth strictly inside
// (lo, hi). ok is false when the interval holds no node.
//
// Complexity: O(MaxDepth · log n).
func (t *Tree) Shallowest(lo, hi int) (p int, ok bool) {
	if lo < 0 {
		lo = 0
	}
	if hi > t.n+1 {
		hi = t.n + 1
	}
	if hi-lo < 2 {
		return 0, false
	}
	for _, bm := range t.levels {
		// Rank(lo) elements are <= lo; the next one is the first > lo.
		r := bm.Rank(uint32(lo))
		if r >= bm.GetCardinality() {
			continue
		}
		v, err := bm.Select(uint32(r))
		if err == nil && int(v) < hi {
			return int(v), true
		}
	}

	return 0, false
}
