package builder_test

import (
	"fmt"

	"github.com/katalvlaran/sublattice/builder"
)

// ExampleBuildGraph assembles a Chimera unit cell with hardware-style labels.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithPartitionPrefix("h", "v")},
		builder.CompleteBipartite(4, 4),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	fmt.Println(g.HasEdge("h0", "v3"), g.HasEdge("h0", "h1"))
	// Output:
	// 8 16
	// true false
}
