package walk

import "fmt"

// RunFullCycle drives e forward until Next reports the end of the range,
// then backward until Position is 0.
//
// Errors:
//   - ErrCycleBroken if Prev refuses to move before reaching 0.
//   - ErrCounterOverflow if e exposes an overflowed counter.
//
// Complexity: n Next calls and n Prev calls; the per-step cost is the
// enumerator's.
func RunFullCycle(e Enumerator) error {
	for e.Next() {
	}
	for e.Position() > 0 {
		if !e.Prev() {
			return fmt.Errorf("%w: stuck at position %d", ErrCycleBroken, e.Position())
		}
	}
	if o, ok := e.(interface{ Overflowed() bool }); ok && o.Overflowed() {
		return ErrCounterOverflow
	}

	return nil
}
