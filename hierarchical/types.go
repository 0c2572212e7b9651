package hierarchical

import (
	"github.com/katalvlaran/rewind/walk"
	"github.com/rs/zerolog"
)

// Option configures an Enumerator.
type Option func(*Options)

// Options holds the Enumerator configuration.
type Options struct {
	// Logger receives a Trace event per charged replay.
	Logger zerolog.Logger

	// OnReplay is called for every charged replay.
	OnReplay walk.ReplayFunc
}

// DefaultOptions returns a no-op logger and hook.
func DefaultOptions() Options {
	return Options{
		Logger:   zerolog.Nop(),
		OnReplay: func(int, int) {},
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
