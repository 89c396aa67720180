package compare_test

import (
	"fmt"

	"github.com/katalvlaran/sublattice/compare"
)

// ExampleHistogram bins two systems' energies on shared dividers.
func ExampleHistogram() {
	tbl, err := compare.Histogram([]compare.Series{
		{Name: "Advantage", Values: []float64{-4, -4, -2, 0}},
		{Name: "Advantage2", Values: []float64{-4, -4, -4, -2}},
	}, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tbl.Counts[0], tbl.Counts[1])

	// Output:
	// [2 2] [3 1]
}

// ExampleSummarize reports quartiles of a small sample.
func ExampleSummarize() {
	s := compare.Summarize([]float64{-3, -1, -2, -2})
	fmt.Println(s.Count, s.Min, s.Median, s.Mean)

	// Output:
	// 4 -3 -2 -2
}
