// Package report turns oracle datasets and enumerator metrics into CSV
// tables and plot-ready series, and fits growth exponents to them.
//
// CSV output always starts with a header row. Costs are printed in
// decimal, an infinite cost as "+Inf".
package report
