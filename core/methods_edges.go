// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeID/GetEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in creation order (views preserve the source order).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge connects from and to, creating missing endpoints, and returns the edge ID.
// If the vertices are already adjacent the existing edge ID is returned (no parallel edges).
//
// Returns ErrEmptyVertexID for an empty endpoint and ErrLoopNotAllowed for from==to
// unless the graph was built WithLoops().
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if eid, ok := g.adjacency[from][to]; ok {
		return eid, nil
	}
	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	eid := formatEdgeID(seq)
	g.insertEdge(eid, from, to, seq)

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacency[e.From], e.To)
	delete(g.adjacency[e.To], e.From)

	return nil
}

// HasEdge reports whether u and v are adjacent, in either orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeID returns the ID of the edge joining u and v, if any.
func (g *Graph) EdgeID(u, v string) (string, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[u][v]

	return eid, ok
}

// GetEdge returns a copy of the edge with the given ID.
func (g *Graph) GetEdge(eid string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Edges returns copies of all edges in creation order.
// Complexity: O(E·logE)
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.sortedEdges()
}

// EdgePairs returns the edges as [From, To] pairs in creation order.
func (g *Graph) EdgePairs() [][2]string {
	edges := g.Edges()
	out := make([][2]string, len(edges))
	for i, e := range edges {
		out[i] = [2]string{e.From, e.To}
	}

	return out
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// sortedEdges snapshots the catalog ordered by seq. Caller holds muEdgeAdj.
func (g *Graph) sortedEdges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// insertEdge stores an edge and its mirrored adjacency. Caller holds muEdgeAdj
// (or owns g exclusively) and has already registered both endpoints.
func (g *Graph) insertEdge(eid, from, to string, seq uint64) {
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, seq: seq}
	g.ensureAdjacency(from)
	g.ensureAdjacency(to)
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid
}

// formatEdgeID renders seq as "e<seq>" without fmt.
func formatEdgeID(seq uint64) string {
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}
