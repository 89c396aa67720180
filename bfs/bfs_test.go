package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sublattice/bfs"
	"github.com/katalvlaran/sublattice/builder"
	"github.com/katalvlaran/sublattice/core"
)

func edges(t *testing.T, pairs ...string) *core.Graph {
	t.Helper()
	require.Equal(t, 0, len(pairs)%2)
	g := core.NewGraph()
	for i := 0; i < len(pairs); i += 2 {
		_, err := g.AddEdge(pairs[i], pairs[i+1])
		require.NoError(t, err)
	}

	return g
}

func TestWalk_Errors(t *testing.T) {
	_, err := bfs.Walk(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.Walk(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.Walk(g, "A", bfs.WithContext(nil))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	_, err = bfs.Components(g, bfs.WithContext(nil))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	_, err = bfs.Diameter(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestWalk_CycleDepths(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)

	tree, err := bfs.Walk(g, "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "5", "2", "4", "3"}, tree.Order)
	assert.Equal(t, 3, tree.Depth["3"])
	assert.Equal(t, 3, tree.Eccentricity())

	path, ok := tree.PathTo("3")
	require.True(t, ok)
	assert.Equal(t, []string{"0", "1", "2", "3"}, path)

	root, ok := tree.PathTo("0")
	require.True(t, ok)
	assert.Equal(t, []string{"0"}, root)
}

func TestWalk_Disconnected(t *testing.T) {
	g := edges(t, "a", "b", "x", "y")
	tree, err := bfs.Walk(g, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tree.Order)
	_, ok := tree.PathTo("x")
	assert.False(t, ok)
}

func TestWalk_CouplerFilter(t *testing.T) {
	// square a-b-c-d-a; dropping b-c forces c to be reached through d
	g := edges(t, "a", "b", "b", "c", "c", "d", "d", "a")
	cut := func(u, v string) bool {
		return !(u == "b" && v == "c" || u == "c" && v == "b")
	}
	tree, err := bfs.Walk(g, "b", bfs.WithCouplerFilter(cut))
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Depth["c"])
	assert.Equal(t, "d", tree.Parent["c"])
}

func TestWalk_Cancellation(t *testing.T) {
	g := edges(t, "a", "b")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Walk(g, "a", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = bfs.Diameter(g, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := edges(t, "c", "d", "a", "b", "b", "e", "x", "y")
	require.NoError(t, g.AddVertex("z"))

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "e"}, {"c", "d"}, {"x", "y"}, {"z"}}, comps)

	empty, err := bfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestComponents_CouplerFilterSplits(t *testing.T) {
	g := edges(t, "a", "b", "b", "c")
	keep := func(u, v string) bool { return u != "c" && v != "c" }
	comps, err := bfs.Components(g, bfs.WithCouplerFilter(keep))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, comps)
}

func TestDiameter(t *testing.T) {
	path, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)
	d, err := bfs.Diameter(path)
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	// a 4x4 grid: corner to corner is 6 hops
	grid, err := builder.BuildGraph(nil, nil, builder.Grid(4, 4))
	require.NoError(t, err)
	d, err = bfs.Diameter(grid)
	require.NoError(t, err)
	assert.Equal(t, 6, d)

	// disconnected: the longer piece wins
	d, err = bfs.Diameter(edges(t, "a", "b", "x", "y", "y", "z"))
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	lone := core.NewGraph()
	require.NoError(t, lone.AddVertex("q"))
	d, err = bfs.Diameter(lone)
	require.NoError(t, err)
	assert.Zero(t, d)
}
