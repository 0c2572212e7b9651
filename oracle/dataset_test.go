package oracle_test

import (
	"testing"

	"github.com/katalvlaran/rewind/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRows_Order checks size and ordering of the (n,k,T) tuples.
func TestRows_Order(t *testing.T) {
	o := oracle.New()
	rows, err := o.Rows(4, 2)
	require.NoError(t, err)
	require.Len(t, rows, 10)
	assert.Equal(t, oracle.Row{N: 0, K: 1, Cost: 0}, rows[0])
	assert.Equal(t, oracle.Row{N: 4, K: 1, Cost: 10}, rows[4])
	assert.Equal(t, oracle.Row{N: 4, K: 2, Cost: 6}, rows[9])
}

// TestUniqueSplitRows drops cells with ambiguous splits.
func TestUniqueSplitRows(t *testing.T) {
	o := oracle.New()
	rows, err := o.UniqueSplitRows(4, 2)
	require.NoError(t, err)

	want := []oracle.SplitRow{
		{N: 1, K: 1, Split: 1, Cost: 1},
		{N: 2, K: 1, Split: 2, Cost: 3},
		{N: 3, K: 1, Split: 3, Cost: 6},
		{N: 4, K: 1, Split: 4, Cost: 10},
		{N: 1, K: 2, Split: 1, Cost: 1},
		{N: 2, K: 2, Split: 1, Cost: 2},
		// (3,2) splits at 1 or 2, (4,2) at 2 or 3: both dropped.
	}
	assert.Equal(t, want, rows)
}

// TestLogKRows uses k = max(floor(log2 n), 1).
func TestLogKRows(t *testing.T) {
	o := oracle.New()
	rows, err := o.LogKRows(9)
	require.NoError(t, err)
	require.Len(t, rows, 10)

	wantK := []int{1, 1, 1, 1, 2, 2, 2, 2, 3, 3}
	for n, r := range rows {
		assert.Equal(t, n, r.N)
		assert.Equal(t, wantK[n], r.K, "k for n=%d", n)
		c, _ := o.T(n, wantK[n])
		assert.Equal(t, c, r.Cost)
	}

	_, err = o.LogKRows(-1)
	assert.ErrorIs(t, err, oracle.ErrInvalidArgument)
}

// TestDiagonalRows is the identity T(n,n) = n.
func TestDiagonalRows(t *testing.T) {
	o := oracle.New()
	rows, err := o.DiagonalRows(500)
	require.NoError(t, err)
	for n, r := range rows {
		assert.Equal(t, oracle.Row{N: n, K: n, Cost: oracle.Cost(n)}, r)
	}
}

// TestGainRows reports what one more slot saves.
func TestGainRows(t *testing.T) {
	o := oracle.New()
	rows, err := o.GainRows(10, 1, 3)
	require.NoError(t, err)
	require.Len(t, rows, 30)
	for _, r := range rows[:10] {
		assert.True(t, r.Gain.IsInf(), "first slot gain is infinite")
	}
	// T(10,1) - T(10,2) = 55 - 24, T(10,2) - T(10,3) = 24 - 18.
	assert.Equal(t, oracle.GainRow{N: 10, K: 2, Gain: 31}, rows[19])
	assert.Equal(t, oracle.GainRow{N: 10, K: 3, Gain: 6}, rows[29])
	for _, r := range rows[10:] {
		assert.GreaterOrEqual(t, r.Gain, oracle.Cost(0))
	}
}
