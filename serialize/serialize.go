package serialize

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/sublattice/core"
	"github.com/katalvlaran/sublattice/mapping"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when encoding a nil graph.
	ErrGraphNil = errors.New("serialize: graph is nil")

	// ErrMalformed is returned when a document cannot be decoded.
	ErrMalformed = errors.New("serialize: malformed document")
)

// graphDoc is the JSON shape of a graph.
type graphDoc struct {
	Nodes []string    `json:"nodes"`
	Edges [][2]string `json:"edges"`
}

func toDoc(g *core.Graph) graphDoc {
	return graphDoc{Nodes: g.Vertices(), Edges: g.EdgePairs()}
}

func fromDoc(doc graphDoc) (*core.Graph, error) {
	g := core.NewGraph()
	for _, n := range doc.Nodes {
		if err := g.AddVertex(n); err != nil {
			return nil, fmt.Errorf("%w: node: %w", ErrMalformed, err)
		}
	}
	for i, e := range doc.Edges {
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrMalformed, i, err)
		}
	}

	return g, nil
}

// WriteGraph writes g as an indented JSON document.
func WriteGraph(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(toDoc(g))
}

// ReadGraph decodes a JSON graph document.
func ReadGraph(r io.Reader) (*core.Graph, error) {
	var doc graphDoc
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return fromDoc(doc)
}

// EncodeGraph returns the opaque string form of g.
func EncodeGraph(g *core.Graph) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	raw, err := json.Marshal(toDoc(g))
	if err != nil {
		return "", fmt.Errorf("serialize: graph: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeGraph reverses EncodeGraph.
func DecodeGraph(s string) (*core.Graph, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	var doc graphDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return fromDoc(doc)
}

// EncodeTable returns the opaque string form of a mapping table. A nil table
// encodes as an empty mapping.
func EncodeTable(t mapping.Table) (string, error) {
	if t == nil {
		t = mapping.Table{}
	}
	raw, err := json.Marshal(map[string]string(t))
	if err != nil {
		return "", fmt.Errorf("serialize: mapping: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeTable reverses EncodeTable.
func DecodeTable(s string) (mapping.Table, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	t := mapping.Table{}
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return t, nil
}

// EncodeMapping materializes m over the nodes of g and encodes the result.
// The empty mapping encodes as an empty table.
func EncodeMapping(m mapping.Mapping, g *core.Graph) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	if mapping.IsEmpty(m) {
		return EncodeTable(nil)
	}
	t, err := mapping.Materialize(m, g.Vertices())
	if err != nil {
		return "", fmt.Errorf("serialize: %w", err)
	}

	return EncodeTable(t)
}
