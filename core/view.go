// File: view.go
// Role: Non-mutating graph views (subgraphs and relabeled copies).
// Determinism:
//   - Preserves edge IDs and creation order of the source graph.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := g.emptyLike()

	g.muVert.RLock()
	for id := range g.vertices {
		if keep[id] {
			out.vertices[id] = struct{}{}
			out.adjacency[id] = make(map[string]string)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		if keep[e.From] && keep[e.To] {
			out.insertEdge(eid, e.From, e.To, e.seq)
		}
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// EdgeSubgraph returns the edge-induced subgraph of g on the edges accepted by keep:
// exactly those edges plus their endpoints. Vertices with no kept incident edge are
// dropped. The input graph is not mutated.
//
// keep is called once per edge, in creation order.
// Complexity: O(E·logE). Concurrency: read locks only on source.
func EdgeSubgraph(g *Graph, keep func(e Edge) bool) *Graph {
	out := g.emptyLike()

	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	edges := g.sortedEdges()
	g.muEdgeAdj.RUnlock()

	for _, e := range edges {
		if !keep(e) {
			continue
		}
		out.vertices[e.From] = struct{}{}
		out.vertices[e.To] = struct{}{}
		out.insertEdge(e.ID, e.From, e.To, e.seq)
	}
	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// Relabel returns a copy of g with every vertex ID replaced by rename(id).
// An empty rename result keeps the original ID.
//
// Vertices sharing an image are merged: duplicate edges collapse onto the first
// one (by creation order) and edges whose endpoints merge are dropped unless the
// graph allows loops. merged reports how many vertices disappeared through merging
// (0 when rename is injective on g's vertices).
//
// Complexity: O(V + E·logE).
func Relabel(g *Graph, rename func(id string) string) (out *Graph, merged int) {
	out = g.emptyLike()
	image := func(id string) string {
		if nid := rename(id); nid != "" {
			return nid
		}
		return id
	}

	vertices := g.Vertices()
	for _, id := range vertices {
		nid := image(id)
		out.vertices[nid] = struct{}{}
		out.ensureAdjacency(nid)
	}

	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	edges := g.sortedEdges()
	g.muEdgeAdj.RUnlock()

	for _, e := range edges {
		from, to := image(e.From), image(e.To)
		if from == to && !out.allowLoops {
			continue
		}
		if _, dup := out.adjacency[from][to]; dup {
			continue
		}
		out.insertEdge(e.ID, from, to, e.seq)
	}
	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out, len(vertices) - len(out.vertices)
}
