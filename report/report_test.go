package report_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/rewind/hierarchical"
	"github.com/katalvlaran/rewind/oracle"
	"github.com/katalvlaran/rewind/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestWriteCSV checks header placement and validation.
func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, []string{"a", "b"}, [][]string{{"1", "2"}, {"x,y", "3"}}))
	assert.Equal(t, "a,b\n1,2\n\"x,y\",3\n", buf.String())

	buf.Reset()
	require.NoError(t, report.WriteCSV(&buf, []string{"a"}, nil))
	assert.Equal(t, "a\n", buf.String())

	assert.ErrorIs(t, report.WriteCSV(&buf, nil, nil), report.ErrNoHeader)
	assert.ErrorIs(t, report.WriteCSV(&buf, []string{"a"}, [][]string{{"1", "2"}}), report.ErrRecordWidth)
	assert.Error(t, report.WriteCSV(failWriter{}, []string{"a"}, [][]string{{"1"}}))
}

// TestRowsCSV writes a small oracle table.
func TestRowsCSV(t *testing.T) {
	rows, err := oracle.New().Rows(3, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.RowsCSV(&buf, rows))
	want := "n,k,cost\n0,1,0\n1,1,1\n2,1,3\n3,1,6\n0,2,0\n1,2,1\n2,2,2\n3,2,4\n"
	assert.Equal(t, want, buf.String())
}

// TestSplitAndGainCSV checks the other oracle tables, including +Inf.
func TestSplitAndGainCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.SplitRowsCSV(&buf, []oracle.SplitRow{{N: 4, K: 1, Split: 4, Cost: 10}}))
	assert.Equal(t, "n,k,split,cost\n4,1,4,10\n", buf.String())

	buf.Reset()
	require.NoError(t, report.GainRowsCSV(&buf, []oracle.GainRow{{N: 2, K: 1, Gain: oracle.Infinity}, {N: 2, K: 2, Gain: 1}}))
	assert.Equal(t, "n,k,gain\n2,1,+Inf\n2,2,1\n", buf.String())
}

// TestMetricsCSV checks the metrics table of a real cycle.
func TestMetricsCSV(t *testing.T) {
	e, err := hierarchical.New(4, 2)
	require.NoError(t, err)
	require.NoError(t, e.RunFullCycle())

	var buf bytes.Buffer
	require.NoError(t, report.MetricsCSV(&buf, []report.Run{{Scheme: "hierarchical", Metrics: e.Metrics()}}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "scheme,n,k,ops,bound,ratio", lines[0])
	assert.Equal(t, "hierarchical,4,2,6,8.00,0.7500", lines[1])
}

// TestSeriesByK groups rows and drops infinite costs.
func TestSeriesByK(t *testing.T) {
	rows := []oracle.Row{
		{N: 1, K: 2, Cost: 1},
		{N: 1, K: 1, Cost: 1},
		{N: 2, K: 2, Cost: 2},
		{N: 2, K: 0, Cost: oracle.Infinity},
		{N: 2, K: 1, Cost: 3},
	}
	got := report.SeriesByK(rows)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].K)
	assert.Equal(t, []report.Point{{X: 1, Y: 1}, {X: 2, Y: 3}}, got[0].Points)
	assert.Equal(t, 2, got[1].K)
	assert.Equal(t, []report.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}, got[1].Points)

	assert.Empty(t, report.SeriesByK(nil))
}

// TestFitExponent recovers exact power laws and rejects degenerate input.
func TestFitExponent(t *testing.T) {
	var pts []report.Point
	for _, x := range []float64{1, 2, 4, 8, 16} {
		pts = append(pts, report.Point{X: x, Y: 3 * x * x})
	}
	pts = append(pts, report.Point{X: 0, Y: 5})
	fit, err := report.FitExponent(pts)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, fit.Exponent, 1e-9)
	assert.InDelta(t, 3.0, fit.Coefficient, 1e-9)
	assert.InDelta(t, 1.0, fit.R2, 1e-9)
	assert.Equal(t, 5, fit.Used)

	_, err = report.FitExponent([]report.Point{{X: 1, Y: 1}})
	assert.ErrorIs(t, err, report.ErrTooFewPoints)
	_, err = report.FitExponent([]report.Point{{X: 2, Y: 1}, {X: 2, Y: 5}})
	assert.ErrorIs(t, err, report.ErrTooFewPoints)
}

// TestFitExponent_Cycles fits the growth of real enumerators.
func TestFitExponent_Cycles(t *testing.T) {
	var runs []report.Run
	for _, n := range []int{64, 128, 256, 512} {
		e, err := hierarchical.New(n, 1)
		require.NoError(t, err)
		require.NoError(t, e.RunFullCycle())
		runs = append(runs, report.Run{Scheme: "hierarchical", Metrics: e.Metrics()})
	}
	fit, err := report.FitExponent(report.RunPoints(runs))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, fit.Exponent, 0.02)
	assert.False(t, math.IsNaN(fit.R2))

	assert.Equal(t, []report.Point{{X: 64, Y: 2080}}, report.RunPoints(runs[:1]))
}
