// File: types.go
// Role: Vertex/Edge/Graph declarations, sentinel errors, GraphOption and NewGraph.
// Determinism:
//   - Edge IDs are generated from a monotonic counter ("e1", "e2", ...); Edges()
//     reports edges in that creation order.
// Concurrency:
//   - muVert guards the vertex catalog; muEdgeAdj guards edges and adjacency.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected connection between two vertices.
//
// From and To keep the orientation the edge was first added with; membership
// queries (HasEdge, EdgeID) ignore it.
type Edge struct {
	// ID uniquely identifies this edge in its Graph.
	ID string

	// From is the first endpoint as added.
	From string

	// To is the second endpoint as added.
	To string

	// seq is the creation rank used for deterministic ordering.
	seq uint64
}

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (e Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	}

	return ""
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected simple graph with string vertex IDs.
//
// Parallel edges never exist: adding an edge between already adjacent vertices
// returns the existing edge ID. Edge membership is O(1) through a mirrored
// adjacency index adjacency[u][v] = edgeID.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	allowLoops bool // allow self-loops

	nextEdgeID uint64                       // atomic edge ID generator
	vertices   map[string]struct{}          // vertex ID set
	edges      map[string]*Edge             // edge ID → Edge
	adjacency  map[string]map[string]string // u → v → edge ID (mirrored)
}

// NewGraph creates an empty Graph. By default loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}
