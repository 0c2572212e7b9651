package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/rewind/config"
	"github.com/katalvlaran/rewind/oracle"
	"github.com/katalvlaran/rewind/report"
	"github.com/rs/zerolog"
)

// writeFile creates dir/name and hands it to write.
func writeFile(dir, name string, write func(io.Writer) error) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", name, err)
	}

	return f.Close()
}

// writeTables writes the oracle datasets and logs the fitted growth of
// every k series.
func writeTables(o *oracle.Oracle, c config.OracleConfig, dir string, log zerolog.Logger) error {
	rows, err := o.Rows(c.MaxN, c.MaxK)
	if err != nil {
		return err
	}
	if err = writeFile(dir, "cost.csv", func(w io.Writer) error { return report.RowsCSV(w, rows) }); err != nil {
		return err
	}
	for _, s := range report.SeriesByK(rows) {
		fit, err := report.FitExponent(s.Points)
		if err != nil {
			log.Debug().Err(err).Int("k", s.K).Msg("skip fit")
			continue
		}
		log.Info().Int("k", s.K).Float64("exponent", fit.Exponent).Float64("r2", fit.R2).Msg("T(n,k) growth")
	}

	splits, err := o.UniqueSplitRows(c.MaxN, c.MaxK)
	if err != nil {
		return err
	}
	if err = writeFile(dir, "splits.csv", func(w io.Writer) error { return report.SplitRowsCSV(w, splits) }); err != nil {
		return err
	}

	logk, err := o.LogKRows(c.LogKN)
	if err != nil {
		return err
	}
	if err = writeFile(dir, "logk.csv", func(w io.Writer) error { return report.RowsCSV(w, logk) }); err != nil {
		return err
	}

	diag, err := o.DiagonalRows(c.DiagonalN)
	if err != nil {
		return err
	}
	if err = writeFile(dir, "diagonal.csv", func(w io.Writer) error { return report.RowsCSV(w, diag) }); err != nil {
		return err
	}

	gains, err := o.GainRows(c.MaxN, c.GainMinK, c.MaxK)
	if err != nil {
		return err
	}
	if err = writeFile(dir, "gain.csv", func(w io.Writer) error { return report.GainRowsCSV(w, gains) }); err != nil {
		return err
	}

	log.Info().
		Int("rows", len(rows)).
		Int("unique_splits", len(splits)).
		Int("gains", len(gains)).
		Msg("oracle tables written")

	return nil
}
