package serialize_test

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sublattice/core"
	"github.com/katalvlaran/sublattice/mapping"
	"github.com/katalvlaran/sublattice/serialize"
)

func sample(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range [][2]string{{"3", "1"}, {"1", "2"}, {"2", "10"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("isolated"))

	return g
}

func TestGraphRoundTrip_PreservesOrder(t *testing.T) {
	g := sample(t)
	s, err := serialize.EncodeGraph(g)
	require.NoError(t, err)

	back, err := serialize.DecodeGraph(s)
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.EdgePairs(), back.EdgePairs())
	assert.True(t, back.HasVertex("isolated"))
}

func TestEncodeGraph_Empty(t *testing.T) {
	s, err := serialize.EncodeGraph(core.NewGraph())
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nodes": [], "edges": []}`, string(raw))

	_, err = serialize.EncodeGraph(nil)
	assert.ErrorIs(t, err, serialize.ErrGraphNil)
}

func TestDecodeGraph_Malformed(t *testing.T) {
	_, err := serialize.DecodeGraph("%%%")
	assert.ErrorIs(t, err, serialize.ErrMalformed)

	_, err = serialize.DecodeGraph(base64.StdEncoding.EncodeToString([]byte("[1,2]")))
	assert.ErrorIs(t, err, serialize.ErrMalformed)

	loop := base64.StdEncoding.EncodeToString([]byte(`{"nodes":[],"edges":[["a","a"]]}`))
	_, err = serialize.DecodeGraph(loop)
	assert.ErrorIs(t, err, serialize.ErrMalformed)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestTableRoundTrip(t *testing.T) {
	tbl := mapping.Table{"0": "128", "1": "133"}
	s, err := serialize.EncodeTable(tbl)
	require.NoError(t, err)
	back, err := serialize.DecodeTable(s)
	require.NoError(t, err)
	assert.Equal(t, tbl, back)

	s, err = serialize.EncodeTable(nil)
	require.NoError(t, err)
	back, err = serialize.DecodeTable(s)
	require.NoError(t, err)
	assert.Empty(t, back)

	_, err = serialize.DecodeTable("not base64!")
	assert.ErrorIs(t, err, serialize.ErrMalformed)
}

func TestEncodeMapping(t *testing.T) {
	g := sample(t)
	s, err := serialize.EncodeMapping(mapping.Total(func(n string) string { return "q" + n }), g)
	require.NoError(t, err)
	back, err := serialize.DecodeTable(s)
	require.NoError(t, err)
	assert.Len(t, back, g.VertexCount())
	assert.Equal(t, "q10", back["10"])

	s, err = serialize.EncodeMapping(mapping.Empty, g)
	require.NoError(t, err)
	back, err = serialize.DecodeTable(s)
	require.NoError(t, err)
	assert.Empty(t, back)

	_, err = serialize.EncodeMapping(mapping.Table{"1": "x"}, g)
	var de *mapping.DomainError
	assert.ErrorAs(t, err, &de)
}

func TestReadWriteGraph(t *testing.T) {
	g := sample(t)
	var buf bytes.Buffer
	require.NoError(t, serialize.WriteGraph(&buf, g))

	back, err := serialize.ReadGraph(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.EdgePairs(), back.EdgePairs())

	_, err = serialize.ReadGraph(strings.NewReader(`{"nodes":[],"edges":[],"weights":[]}`))
	assert.ErrorIs(t, err, serialize.ErrMalformed)
	assert.ErrorIs(t, serialize.WriteGraph(&buf, nil), serialize.ErrGraphNil)
}
