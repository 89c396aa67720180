package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/sublattice/bfs"
	"github.com/katalvlaran/sublattice/core"
)

// ExampleWalk measures hop distances across a 3×3 grid.
func ExampleWalk() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1))
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}

	tree, err := bfs.Walk(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tree.Order)
	fmt.Println(tree.Eccentricity())
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
	// 4
}

// ExampleComponents splits a trimmed intersection into its connected pieces.
func ExampleComponents() {
	g := core.NewGraph()
	_, _ = g.AddEdge("0", "4")
	_, _ = g.AddEdge("4", "1")
	_, _ = g.AddEdge("8", "12")

	comps, _ := bfs.Components(g)
	for _, c := range comps {
		fmt.Println(len(c), c)
	}
	// Output:
	// 3 [0 1 4]
	// 2 [12 8]
}
