package logtree

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/rewind/walk"
	"github.com/rs/zerolog"
)

// MaxN is the largest range the tree can index; positions are stored as
// uint32 in roaring bitmaps.
const MaxN = math.MaxUint32

var (
	// ErrInvalidArgument wraps walk.ErrInvalidArgument for tree and window
	// sizes.
	ErrInvalidArgument = fmt.Errorf("logtree: %w", walk.ErrInvalidArgument)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("logtree: invalid option supplied")
)

// Option configures an Enumerator. An invalid Option is recorded and
// surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the Enumerator configuration.
type Options struct {
	// ForwardDepth is the deepest tree level checkpointed on the forward
	// sweep. 0 admits only the powers of two and n.
	ForwardDepth int

	// Logger receives a Trace event per charged replay.
	Logger zerolog.Logger

	// OnReplay is called for every charged replay.
	OnReplay walk.ReplayFunc

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns forward depth 0 with a no-op logger and hook.
func DefaultOptions() Options {
	return Options{
		ForwardDepth: 0,
		Logger:       zerolog.Nop(),
		OnReplay:     func(int, int) {},
	}
}

// WithForwardDepth sets the deepest tree level checkpointed going forward.
//
//	d >= 0: admit depths 0..d
//	d < 0:  invalid option → ErrOptionViolation
func WithForwardDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: ForwardDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.ForwardDepth = d
	}
}

// WithLogger routes replay events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnReplay registers fn to observe charged replays. A nil fn is ignored.
func WithOnReplay(fn walk.ReplayFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReplay = fn
		}
	}
}

// DefaultWindow returns max(1, ⌈log2 n⌉).
func DefaultWindow(n int) int {
	if n <= 1 {
		return 1
	}

	return bits.Len(uint(n - 1))
}
