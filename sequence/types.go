package sequence

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rewind/walk"
)

// Sentinel errors returned by the generator.
var (
	// ErrInvalidArgument wraps walk.ErrInvalidArgument for a level below 1
	// or a negative limit.
	ErrInvalidArgument = fmt.Errorf("sequence: %w", walk.ErrInvalidArgument)

	// ErrOverflow indicates a binomial coefficient larger than 2^64-1.
	ErrOverflow = errors.New("sequence: binomial coefficient overflows uint64")

	// ErrUnbounded indicates a sequence that failed to reach its limit within
	// limit+1 terms. Growth is at least linear for m ≥ 1, so this signals a
	// broken invariant rather than a large input.
	ErrUnbounded = errors.New("sequence: sequence did not cover its limit")
)
