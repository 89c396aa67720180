package compare

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors.
var (
	// ErrNoData is returned when there is nothing to bin.
	ErrNoData = errors.New("compare: no energies")

	// ErrBadBins is returned for a non-positive bin count.
	ErrBadBins = errors.New("compare: bins must be positive")
)

// Summary describes one energy distribution.
type Summary struct {
	Count  int
	Min    float64
	Mean   float64
	StdDev float64
	Median float64
	Q1     float64
	Q3     float64
}

// Summarize computes a Summary. An empty input gives a zero Summary with
// NaN statistics.
func Summarize(energies []float64) Summary {
	if len(energies) == 0 {
		nan := math.NaN()
		return Summary{Min: nan, Mean: nan, StdDev: nan, Median: nan, Q1: nan, Q3: nan}
	}
	x := slices.Clone(energies)
	slices.Sort(x)

	s := Summary{
		Count:  len(x),
		Min:    x[0],
		Mean:   stat.Mean(x, nil),
		Median: stat.Quantile(0.5, stat.Empirical, x, nil),
		Q1:     stat.Quantile(0.25, stat.Empirical, x, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, x, nil),
	}
	if len(x) > 1 {
		s.StdDev = stat.StdDev(x, nil)
	}

	return s
}

// Series is a named energy sample, usually one per system.
type Series struct {
	Name   string
	Values []float64
}

// Table is a histogram of several series over shared dividers: bin i covers
// [Dividers[i], Dividers[i+1]).
type Table struct {
	Dividers []float64
	Names    []string
	// Counts[s][i] is the number of values of series s in bin i.
	Counts [][]float64
}

// Bins returns the number of bins.
func (t *Table) Bins() int { return len(t.Dividers) - 1 }

// Histogram bins every series on the same bins dividers spanning the union
// range of all values. A degenerate range is widened by ±0.5.
func Histogram(series []Series, bins int) (*Table, error) {
	if bins < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadBins, bins)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return nil, ErrNoData
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram excludes the upper divider; nudge it so hi lands in the last bin.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	t := &Table{Dividers: dividers, Names: make([]string, len(series)), Counts: make([][]float64, len(series))}
	for i, s := range series {
		t.Names[i] = s.Name
		x := slices.Clone(s.Values)
		slices.Sort(x)
		t.Counts[i] = stat.Histogram(nil, dividers, x, nil)
	}

	return t, nil
}

// WriteSummaries renders one row per named summary.
func WriteSummaries(w io.Writer, names []string, sums []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "system\treads\tmin\tmean\tstddev\tq1\tmedian\tq3")
	for i, s := range sums {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			names[i], s.Count, s.Min, s.Mean, s.StdDev, s.Q1, s.Median, s.Q3)
	}

	return tw.Flush()
}

// Write renders the table with one row per bin and one column per series.
func (t *Table) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "bin")
	for _, n := range t.Names {
		fmt.Fprintf(tw, "\t%s", n)
	}
	fmt.Fprintln(tw)
	for i := 0; i < t.Bins(); i++ {
		fmt.Fprintf(tw, "[%.3f, %.3f)", t.Dividers[i], t.Dividers[i+1])
		for s := range t.Names {
			fmt.Fprintf(tw, "\t%g", t.Counts[s][i])
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
