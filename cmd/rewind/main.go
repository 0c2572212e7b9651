// Command rewind tabulates the optimal replay costs, runs the enumerator
// schemes through full cycles and writes everything as CSV files.
//
//	rewind --max-n 1024 --max-k 5 --sizes 32,128,512 --ks 2,4 --out out
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/rewind/config"
	"github.com/katalvlaran/rewind/oracle"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "rewind:", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := config.Flags("rewind")
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	path, err := fs.GetString("config")
	if err != nil {
		return err
	}

	cfg, err := config.Load(path, fs)
	if err != nil {
		return err
	}
	log, err := config.NewLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	o := oracle.New(
		oracle.WithPrealloc(cfg.Oracle.MaxN, cfg.Oracle.MaxK),
		oracle.WithLogger(log),
	)
	if err = writeTables(o, cfg.Oracle, cfg.Output.Dir, log); err != nil {
		return err
	}

	runs, err := runSchemes(o, cfg.Walk, log)
	if err != nil {
		return err
	}
	if err = writeRuns(runs, cfg.Output.Dir, log); err != nil {
		return err
	}
	log.Info().Str("dir", cfg.Output.Dir).Int("runs", len(runs)).Msg("done")

	return nil
}
