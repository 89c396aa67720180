package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sublattice/core"
)

// square builds the 4-cycle A-B-C-D-A with a dangling E attached to D.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"D", "E"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}

func TestInducedSubgraph(t *testing.T) {
	g := square(t)
	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true, "D": true})

	assert.Equal(t, []string{"A", "B", "D"}, sub.Vertices())
	assert.Equal(t, [][2]string{{"A", "B"}, {"D", "A"}}, sub.EdgePairs())
	assert.Equal(t, 5, g.EdgeCount(), "source must not be mutated")
}

func TestEdgeSubgraph_DropsIsolatedEndpoints(t *testing.T) {
	g := square(t)
	sub := core.EdgeSubgraph(g, func(e core.Edge) bool {
		return e.From != "D" // drops D-A and D-E
	})

	assert.Equal(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}}, sub.EdgePairs())
	assert.Equal(t, []string{"A", "B", "C", "D"}, sub.Vertices())
	assert.False(t, sub.HasVertex("E"))

	// IDs are preserved from the source
	orig, _ := g.EdgeID("C", "D")
	kept, _ := sub.EdgeID("D", "C")
	assert.Equal(t, orig, kept)
}

func TestEdgeSubgraph_NoEdges(t *testing.T) {
	g := square(t)
	sub := core.EdgeSubgraph(g, func(core.Edge) bool { return false })
	assert.Equal(t, 0, sub.VertexCount())
	assert.Equal(t, 0, sub.EdgeCount())
}

func TestRelabel_Injective(t *testing.T) {
	g := square(t)
	out, merged := core.Relabel(g, strings.ToLower)

	assert.Equal(t, 0, merged)
	assert.Equal(t, g.VertexCount(), out.VertexCount())
	assert.Equal(t, g.EdgeCount(), out.EdgeCount())
	assert.Equal(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}, {"d", "e"}}, out.EdgePairs())
}

func TestRelabel_MergesCollisions(t *testing.T) {
	g := square(t)
	// A and C share an image: A-B and C-B collapse, C-D and D-A collapse.
	out, merged := core.Relabel(g, func(id string) string {
		if id == "C" {
			return "A"
		}
		return id
	})

	assert.Equal(t, 1, merged)
	assert.Equal(t, []string{"A", "B", "D", "E"}, out.Vertices())
	assert.Equal(t, [][2]string{{"A", "B"}, {"A", "D"}, {"D", "E"}}, out.EdgePairs())
}

func TestRelabel_MergedEndpointsDropEdge(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("x", "y")
	out, merged := core.Relabel(g, func(string) string { return "z" })

	assert.Equal(t, 1, merged)
	assert.Equal(t, 1, out.VertexCount())
	assert.Equal(t, 0, out.EdgeCount())
}

func TestRelabel_EmptyImageKeepsID(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("x", "y")
	out, _ := core.Relabel(g, func(id string) string {
		if id == "x" {
			return ""
		}
		return "Y"
	})
	assert.True(t, out.HasEdge("x", "Y"))
}
