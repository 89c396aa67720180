// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries over edge IDs, creation order and nextEdgeID.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := g.emptyLike()
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.adjacency[id] = make(map[string]string)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and adjacency.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		clone.insertEdge(eid, e.From, e.To, e.seq)
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]struct{})
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]string)
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// emptyLike builds a fresh graph with g's flags.
func (g *Graph) emptyLike() *Graph {
	var opts []GraphOption
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return NewGraph(opts...)
}
