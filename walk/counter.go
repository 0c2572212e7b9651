package walk

import "math/bits"

// Counter accumulates replayed unit steps. It never decreases; an addition
// that would wrap saturates the counter and latches Overflowed.
type Counter struct {
	ops      uint64
	overflow bool
}

// Add charges n operations.
func (c *Counter) Add(n uint64) {
	sum, carry := bits.Add64(c.ops, n, 0)
	if carry != 0 {
		c.ops = ^uint64(0)
		c.overflow = true

		return
	}
	c.ops = sum
}

// Charge adds the distance from a restored checkpoint to a target;
// non-positive distances are free.
func (c *Counter) Charge(from, to int) {
	if to > from {
		c.Add(uint64(to - from))
	}
}

// Value returns the operations charged so far.
func (c *Counter) Value() uint64 { return c.ops }

// Overflowed reports whether any Add saturated.
func (c *Counter) Overflowed() bool { return c.overflow }
