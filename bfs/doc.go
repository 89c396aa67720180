// Package bfs walks coupler graphs breadth-first. The intersection report uses
// it to measure how usable a trimmed sublattice is: how many connected pieces
// it falls into, how large they are, and how far apart their qubits sit.
//
// What
//
//   - Walk(g, root, opts...) returns a Tree with visit order, hop distances
//     and parent links. Tree.Eccentricity is the farthest hop count.
//   - Components(g, opts...) partitions g into connected components.
//   - Diameter(g, opts...) is the largest eccentricity over all vertices; for
//     a disconnected graph it is the largest diameter of any component.
//   - WithCouplerFilter restricts every walk to the couplers it accepts, so one
//     pattern graph can be measured as seen by a single system's mapping.
//
// Determinism
//
//	core.Graph.NeighborIDs returns IDs sorted, so visit order is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Walk, Components: O(V + E)
//   - Diameter:         O(V·(V + E))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the root does not exist.
//   - ErrOptionViolation      for a nil context.
//   - ctx.Err() when the context is cancelled mid-walk.
package bfs
