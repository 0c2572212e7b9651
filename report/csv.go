package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/rewind/oracle"
	"github.com/katalvlaran/rewind/walk"
)

var (
	// ErrNoHeader is returned by WriteCSV for an empty header.
	ErrNoHeader = errors.New("report: header row is empty")

	// ErrRecordWidth is returned when a record does not match the header.
	ErrRecordWidth = errors.New("report: record width differs from header")

	// ErrTooFewPoints is returned by FitExponent with fewer than two usable
	// points.
	ErrTooFewPoints = errors.New("report: at least two positive points required")
)

// Run is the metrics of one full cycle tagged with the scheme name.
type Run struct {
	Scheme string
	walk.Metrics
}

// WriteCSV writes header followed by records.
//
// Errors: ErrNoHeader, ErrRecordWidth, or the underlying write error.
func WriteCSV(w io.Writer, header []string, records [][]string) error {
	if len(header) == 0 {
		return ErrNoHeader
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	for i, rec := range records {
		if len(rec) != len(header) {
			return fmt.Errorf("%w: record %d has %d fields, header %d", ErrRecordWidth, i, len(rec), len(header))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: write record %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush: %w", err)
	}

	return nil
}

// RowsCSV writes n,k,cost.
func RowsCSV(w io.Writer, rows []oracle.Row) error {
	recs := make([][]string, len(rows))
	for i, r := range rows {
		recs[i] = []string{strconv.Itoa(r.N), strconv.Itoa(r.K), r.Cost.String()}
	}

	return WriteCSV(w, []string{"n", "k", "cost"}, recs)
}

// SplitRowsCSV writes n,k,split,cost.
func SplitRowsCSV(w io.Writer, rows []oracle.SplitRow) error {
	recs := make([][]string, len(rows))
	for i, r := range rows {
		recs[i] = []string{strconv.Itoa(r.N), strconv.Itoa(r.K), strconv.Itoa(r.Split), r.Cost.String()}
	}

	return WriteCSV(w, []string{"n", "k", "split", "cost"}, recs)
}

// GainRowsCSV writes n,k,gain.
func GainRowsCSV(w io.Writer, rows []oracle.GainRow) error {
	recs := make([][]string, len(rows))
	for i, r := range rows {
		recs[i] = []string{strconv.Itoa(r.N), strconv.Itoa(r.K), r.Gain.String()}
	}

	return WriteCSV(w, []string{"n", "k", "gain"}, recs)
}

// MetricsCSV writes scheme,n,k,ops,bound,ratio.
func MetricsCSV(w io.Writer, runs []Run) error {
	recs := make([][]string, len(runs))
	for i, r := range runs {
		recs[i] = []string{
			r.Scheme,
			strconv.Itoa(r.N),
			strconv.Itoa(r.K),
			strconv.FormatUint(r.Ops, 10),
			strconv.FormatFloat(r.Bound, 'f', 2, 64),
			strconv.FormatFloat(r.Ratio, 'f', 4, 64),
		}
	}

	return WriteCSV(w, []string{"scheme", "n", "k", "ops", "bound", "ratio"}, recs)
}
