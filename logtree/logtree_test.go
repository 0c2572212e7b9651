package logtree_test

import (
	"testing"

	"github.com/katalvlaran/rewind/logtree"
	"github.com/katalvlaran/rewind/oracle"
	"github.com/katalvlaran/rewind/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultWindow checks max(1, ⌈log2 n⌉).
func TestDefaultWindow(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 1, 3: 2, 4: 2, 5: 3, 10: 4, 32: 5, 33: 6, 1024: 10, 2048: 11}
	for n, want := range cases {
		assert.Equal(t, want, logtree.DefaultWindow(n), "n=%d", n)
	}
}

// TestNew_Errors checks argument and option validation.
func TestNew_Errors(t *testing.T) {
	_, err := logtree.New(-1, 2)
	assert.ErrorIs(t, err, walk.ErrInvalidArgument)
	_, err = logtree.New(5, 0)
	assert.ErrorIs(t, err, walk.ErrInvalidArgument)
	_, err = logtree.New(5, -2)
	assert.ErrorIs(t, err, walk.ErrInvalidArgument)
	_, err = logtree.New(5, 2, logtree.WithForwardDepth(-1))
	assert.ErrorIs(t, err, logtree.ErrOptionViolation)

	e, err := logtree.New(0, 0)
	require.NoError(t, err)
	assert.False(t, e.Next())
	assert.False(t, e.Prev())
}

// TestFullCycle_KnownCounts pins the operation counts with the default window.
func TestFullCycle_KnownCounts(t *testing.T) {
	cases := []struct {
		n   int
		k   int
		ops uint64
	}{
		{1, 1, 1},
		{2, 1, 3},
		{3, 2, 4},
		{4, 2, 6},
		{10, 4, 17},
		{16, 4, 38},
		{32, 5, 91},
		{128, 7, 489},
		{256, 8, 1106},
		{512, 9, 2467},
		{1024, 10, 5445},
		{2048, 11, 11913},
	}
	for _, c := range cases {
		e, err := logtree.NewAuto(c.n)
		require.NoError(t, err)
		require.NoError(t, e.RunFullCycle())

		m := e.Metrics()
		assert.Equal(t, c.k, m.K, "n=%d", c.n)
		assert.Equal(t, c.ops, m.Ops, "n=%d", c.n)
		assert.LessOrEqual(t, m.Ratio, 1.0, "n=%d", c.n)
		assert.Equal(t, 0, e.Position())
	}
}

// TestForwardDepth checks that deeper forward checkpoints change the cost.
func TestForwardDepth(t *testing.T) {
	e, err := logtree.New(128, 7, logtree.WithForwardDepth(1))
	require.NoError(t, err)
	require.NoError(t, e.RunFullCycle())
	assert.EqualValues(t, 457, e.OperationCount())

	e, err = logtree.New(128, 3)
	require.NoError(t, err)
	require.NoError(t, e.RunFullCycle())
	assert.EqualValues(t, 2175, e.OperationCount())
}

// TestWindowNeverExceedsK checks the memory bound after every move.
func TestWindowNeverExceedsK(t *testing.T) {
	for _, k := range []int{1, 2, 5, 9} {
		e, err := logtree.New(500, k)
		require.NoError(t, err)
		for e.Next() {
			require.LessOrEqual(t, e.WindowLen(), k)
		}
		for e.Prev() {
			require.LessOrEqual(t, e.WindowLen(), k)
			for _, p := range e.Checkpoints() {
				require.True(t, e.Tree().Contains(p))
			}
		}
		assert.Equal(t, 0, e.Position())
	}
}

// TestForwardSweepCheckpointsShallowNodes checks the window after going forward.
func TestForwardSweepCheckpointsShallowNodes(t *testing.T) {
	e, err := logtree.New(10, 4)
	require.NoError(t, err)
	for e.Next() {
	}
	assert.EqualValues(t, 10, e.OperationCount())
	assert.Equal(t, []int{2, 4, 8, 10}, e.Checkpoints())

	// 10 → 9: checkpoint 10 released, replay 8 → 9 and checkpoint 9.
	require.True(t, e.Prev())
	assert.EqualValues(t, 11, e.OperationCount())
	assert.Equal(t, []int{2, 4, 8, 9}, e.Checkpoints())
}

// TestNeverBeatsOracle checks ops ≥ T(n,k+1): the window plus the live
// cursor is at most k+1 saved states.
func TestNeverBeatsOracle(t *testing.T) {
	o := oracle.New()
	for _, n := range []int{5, 10, 32, 128} {
		k := logtree.DefaultWindow(n)
		e, err := logtree.New(n, k)
		require.NoError(t, err)
		require.NoError(t, e.RunFullCycle())

		opt, err := o.T(n, k+1)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, e.OperationCount(), uint64(opt), "n=%d", n)
	}
}

// TestOnReplay checks that the hook sees exactly the replayed operations.
func TestOnReplay(t *testing.T) {
	var replayed int
	e, err := logtree.NewAuto(128, logtree.WithOnReplay(func(from, to int) {
		replayed += to - from
	}))
	require.NoError(t, err)
	require.NoError(t, e.RunFullCycle())
	assert.Equal(t, 489-128, replayed)
}
