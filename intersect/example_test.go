package intersect_test

import (
	"fmt"

	"github.com/katalvlaran/sublattice/core"
	"github.com/katalvlaran/sublattice/intersect"
	"github.com/katalvlaran/sublattice/mapping"
)

// ExampleCompose intersects a triangle pattern across two chips, each missing
// a different coupler.
func ExampleCompose() {
	pattern := core.NewGraph()
	_, _ = pattern.AddEdge("0", "1")
	_, _ = pattern.AddEdge("1", "2")
	_, _ = pattern.AddEdge("2", "0")

	chipA := core.NewGraph()
	_, _ = chipA.AddEdge("A0", "A1")
	_, _ = chipA.AddEdge("A1", "A2")

	chipB := core.NewGraph()
	_, _ = chipB.AddEdge("B0", "B1")
	_, _ = chipB.AddEdge("B2", "B0")

	on := func(p string) mapping.Enumerator {
		return mapping.Static(mapping.Total(func(n string) string { return p + n }))
	}
	in, err := intersect.Compose(pattern, []intersect.System{
		{Name: "A", Graph: chipA, Enumerator: on("A")},
		{Name: "B", Graph: chipB, Enumerator: on("B")},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range in.Placements {
		fmt.Println(p.System, p.Yield, p.Final.EdgePairs())
	}
	fmt.Println("common:", in.Reference.EdgePairs())
	// Output:
	// A 2 [[A0 A1]]
	// B 1 [[B0 B1]]
	// common: [[0 1]]
}
