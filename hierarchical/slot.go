package hierarchical

import "sort"

// slot is a cursor over one immutable level sequence. Slots never share
// their index.
type slot struct {
	seq []uint64
	idx int
}

func (s *slot) value() int { return int(s.seq[s.idx]) }

func (s *slot) last() int { return len(s.seq) - 1 }

// seek moves the cursor to the largest index whose value is <= target.
// Upward moves walk from the current index (one step on a forward move);
// downward moves binary-search below it.
func (s *slot) seek(target int) {
	t := uint64(target)
	for s.idx < s.last() && s.seq[s.idx+1] <= t {
		s.idx++
	}
	if s.seq[s.idx] > t {
		// seq[0] = 0 <= t, so Search returns at least 1.
		s.idx = sort.Search(s.idx, func(i int) bool { return s.seq[i] > t }) - 1
	}
}
