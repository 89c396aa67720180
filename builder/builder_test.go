package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sublattice/builder"
	"github.com/katalvlaran/sublattice/core"
)

func TestBuilders_Topologies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}}, g.EdgePairs())
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("4", "0"))
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
		},
		{
			name: "CompleteBipartite(4,4)", ctor: builder.CompleteBipartite(4, 4), wantV: 8, wantE: 16,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("L0", "R3"))
				assert.False(t, g.HasEdge("L0", "L1"))
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0,0", "0,1"))
				assert.True(t, g.HasEdge("0,2", "1,2"))
				assert.False(t, g.HasEdge("0,0", "1,1"))
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Validation(t *testing.T) {
	cases := map[string]builder.Constructor{
		"path":      builder.Path(1),
		"cycle":     builder.Cycle(2),
		"complete":  builder.Complete(0),
		"bipartite": builder.CompleteBipartite(0, 3),
		"grid":      builder.Grid(0, 3),
	}
	for name, ctor := range cases {
		_, err := builder.BuildGraph(nil, nil, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}

	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestBuilders_IDSchemes(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbNumb("q")}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"q0", "q1", "q2"}, g.Vertices())

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDScheme(builder.OffsetIDFn(128))}, builder.Path(2))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("128", "129"))

	g, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithPartitionPrefix("a", "")},
		builder.CompleteBipartite(1, 1))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("a0", "R0"))
}

func TestDefects(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.Complete(12), builder.Defects(0.3))
		require.NoError(t, err)
		return g
	}

	a, b := build(7), build(7)
	assert.Equal(t, a.EdgePairs(), b.EdgePairs(), "same seed, same defects")
	assert.Less(t, a.EdgeCount(), 66)
	assert.Equal(t, 12, a.VertexCount(), "defects never remove qubits")

	_, err := builder.BuildGraph(nil, nil, builder.Complete(3), builder.Defects(0.1))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.Defects(1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	all, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)},
		builder.Cycle(4), builder.Defects(1))
	require.NoError(t, err)
	assert.Equal(t, 0, all.EdgeCount())
	none, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)},
		builder.Cycle(4), builder.Defects(0))
	require.NoError(t, err)
	assert.Equal(t, 4, none.EdgeCount())
}

func TestRelabel(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3), builder.Relabel(builder.OffsetIDFn(40)))
	require.NoError(t, err)
	assert.Equal(t, []string{"40", "41", "42"}, g.Vertices())
	assert.True(t, g.HasEdge("42", "40"))

	_, err = builder.BuildGraph(nil, nil, builder.Grid(1, 2), builder.Relabel(builder.DefaultIDFn))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(nil, nil, builder.Path(2),
		builder.Relabel(func(int) string { return "same" }))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}
