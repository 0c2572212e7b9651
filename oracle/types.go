package oracle

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/rewind/walk"
	"github.com/rs/zerolog"
)

// Sentinel errors returned by the oracle.
var (
	// ErrInvalidArgument wraps walk.ErrInvalidArgument for negative n or k.
	ErrInvalidArgument = fmt.Errorf("oracle: %w", walk.ErrInvalidArgument)

	// ErrOverflow indicates a finite cost that does not fit in int64.
	ErrOverflow = errors.New("oracle: cost overflows int64")

	// ErrOptionViolation is returned by the first query after an invalid
	// Option was supplied to New.
	ErrOptionViolation = errors.New("oracle: invalid option supplied")
)

// Cost is a replay cost in unit steps. Infinity marks an infeasible
// (n > 0, k = 0) configuration.
type Cost int64

// Infinity is the cost of traversing a non-empty range without memory.
const Infinity Cost = math.MaxInt64

// IsInf reports whether c is Infinity.
func (c Cost) IsInf() bool { return c == Infinity }

// String prints the decimal cost, or "+Inf".
func (c Cost) String() string {
	if c.IsInf() {
		return "+Inf"
	}

	return strconv.FormatInt(int64(c), 10)
}

// add returns a+b, reporting ok=false when the sum leaves the finite range.
// Callers never pass Infinity.
func add(a, b Cost) (Cost, bool) {
	if b > 0 && a > Infinity-1-b {
		return 0, false
	}

	return a + b, true
}

// Option configures an Oracle.
type Option func(*Options)

// Options holds the Oracle configuration.
type Options struct {
	// PreallocN, PreallocK size the memo table up front; the table still
	// grows on demand past them.
	PreallocN int
	PreallocK int

	// Logger receives a Debug event every time the table grows.
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns an empty preallocation and a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithPrealloc reserves room for n in 0..maxN and k in 0..maxK.
// Negative values are recorded and surface as ErrOptionViolation.
func WithPrealloc(maxN, maxK int) Option {
	return func(o *Options) {
		if maxN < 0 || maxK < 0 {
			o.err = fmt.Errorf("%w: prealloc (%d,%d) must be non-negative", ErrOptionViolation, maxN, maxK)

			return
		}
		o.PreallocN, o.PreallocK = maxN, maxK
	}
}

// WithLogger routes table-growth events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
