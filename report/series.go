package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/rewind/oracle"
	"gonum.org/v1/gonum/stat"
)

// Point is one plot sample.
type Point struct {
	X, Y float64
}

// Series is the curve of one checkpoint budget.
type Series struct {
	K      int
	Points []Point
}

// Fit is y ≈ Coefficient · x^Exponent on log-log axes.
type Fit struct {
	Exponent    float64
	Coefficient float64
	R2          float64
	Used        int // points with x > 0 and y > 0
}

// SeriesByK groups rows into one (n, cost) series per k, in increasing k
// and the row order within each k. Infinite costs are skipped.
func SeriesByK(rows []oracle.Row) []Series {
	byK := make(map[int]int)
	var out []Series
	for _, r := range rows {
		if r.Cost.IsInf() {
			continue
		}
		i, ok := byK[r.K]
		if !ok {
			i = len(out)
			byK[r.K] = i
			out = append(out, Series{K: r.K})
		}
		out[i].Points = append(out[i].Points, Point{X: float64(r.N), Y: float64(r.Cost)})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].K < out[b].K })

	return out
}

// RunPoints returns (n, ops) for each run.
func RunPoints(runs []Run) []Point {
	out := make([]Point, len(runs))
	for i, r := range runs {
		out[i] = Point{X: float64(r.N), Y: float64(r.Ops)}
	}

	return out
}

// FitExponent fits log y = log c + e·log x by least squares over the
// points with positive coordinates.
//
// Errors: ErrTooFewPoints when fewer than two points are usable or all
// usable x coincide.
func FitExponent(points []Point) (Fit, error) {
	var lx, ly []float64
	for _, p := range points {
		if p.X > 0 && p.Y > 0 {
			lx = append(lx, math.Log(p.X))
			ly = append(ly, math.Log(p.Y))
		}
	}
	if len(lx) < 2 || stat.Variance(lx, nil) == 0 {
		return Fit{}, fmt.Errorf("%w: %d usable of %d", ErrTooFewPoints, len(lx), len(points))
	}

	alpha, beta := stat.LinearRegression(lx, ly, nil, false)

	return Fit{
		Exponent:    beta,
		Coefficient: math.Exp(alpha),
		R2:          stat.RSquared(lx, ly, nil, alpha, beta),
		Used:        len(lx),
	}, nil
}
