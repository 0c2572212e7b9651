package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/rewind/config"
	"github.com/katalvlaran/rewind/hierarchical"
	"github.com/katalvlaran/rewind/logtree"
	"github.com/katalvlaran/rewind/oracle"
	"github.com/katalvlaran/rewind/report"
	"github.com/katalvlaran/rewind/stack"
	"github.com/katalvlaran/rewind/walk"
	"github.com/rs/zerolog"
)

// cycler is an enumerator that can report its own metrics.
type cycler interface {
	walk.Enumerator
	RunFullCycle() error
	Metrics() walk.Metrics
}

// runSchemes drives a full cycle for every configured scheme and size.
// Hierarchical runs are compared with the optimal cost of the same budget.
func runSchemes(o *oracle.Oracle, c config.WalkConfig, log zerolog.Logger) ([]report.Run, error) {
	var runs []report.Run
	for _, scheme := range c.Schemes {
		for _, n := range c.Sizes {
			var (
				es  []cycler
				err error
			)
			switch scheme {
			case config.SchemeHierarchical:
				for _, k := range c.Ks {
					e, err := hierarchical.New(n, k, hierarchical.WithLogger(log))
					if err != nil {
						return nil, err
					}
					es = append(es, e)
				}
			case config.SchemeLogTree:
				var e *logtree.Enumerator
				if e, err = logtree.NewAuto(n, logtree.WithLogger(log)); err != nil {
					return nil, err
				}
				es = append(es, e)
			case config.SchemeStack:
				var e *stack.Enumerator
				if e, err = stack.New(n); err != nil {
					return nil, err
				}
				es = append(es, e)
			default:
				return nil, fmt.Errorf("unknown scheme %q", scheme)
			}

			for _, e := range es {
				if err = e.RunFullCycle(); err != nil {
					return nil, err
				}
				m := e.Metrics()
				ev := log.Info().Str("scheme", scheme).Stringer("metrics", m)
				if scheme == config.SchemeHierarchical {
					opt, err := o.T(m.N, m.K)
					if err != nil {
						return nil, err
					}
					ev = ev.Stringer("optimal", opt)
				}
				ev.Msg("full cycle")
				runs = append(runs, report.Run{Scheme: scheme, Metrics: m})
			}
		}
	}

	return runs, nil
}

// writeRuns writes metrics.csv and logs a growth fit per scheme and budget.
func writeRuns(runs []report.Run, dir string, log zerolog.Logger) error {
	if err := writeFile(dir, "metrics.csv", func(w io.Writer) error { return report.MetricsCSV(w, runs) }); err != nil {
		return err
	}

	groups := make(map[string][]report.Run)
	for _, r := range runs {
		key := r.Scheme
		if r.Scheme == config.SchemeHierarchical {
			key = fmt.Sprintf("%s/k=%d", r.Scheme, r.K)
		}
		groups[key] = append(groups[key], r)
	}
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fit, err := report.FitExponent(report.RunPoints(groups[key]))
		if err != nil {
			log.Debug().Err(err).Str("group", key).Msg("skip fit")
			continue
		}
		log.Info().Str("group", key).Float64("exponent", fit.Exponent).Float64("coefficient", fit.Coefficient).Msg("ops growth")
	}

	return nil
}
