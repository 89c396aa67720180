// Package core provides the thread-safe, undirected, simple Graph used to model
// quantum-processor topologies (qubits as vertices, couplers as edges) and the
// lattice patterns embedded into them.
//
// The Graph G = (V,E) has:
//
//   - String vertex IDs ("0", "1", ... for hardware qubits; any label for patterns)
//   - No parallel edges: AddEdge on adjacent vertices returns the existing edge ID
//   - No self-loops unless built WithLoops()
//   - Constant-time, orientation-free edge membership via a mirrored index:
//     adjacency[u][v] = edgeID = adjacency[v][u]
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	HasVertex(id string) bool           // O(1)
//	RemoveVertex(id string) error       // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string) (string, error) // O(1)
//	RemoveEdge(edgeID string) error          // O(1)
//	HasEdge(u, v string) bool                // O(1), order-insensitive
//	EdgeID(u, v string) (string, bool)       // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(d·log d), sorted
//	Vertices() []string                      // O(V·log V), sorted
//	Edges() []Edge                           // O(E·log E), creation order
//	VertexCount(), EdgeCount(), Degree(id)
//
//	// Views (never mutate the source)
//	InducedSubgraph(g, keep)   // vertex-induced
//	EdgeSubgraph(g, keep)      // edge-induced: kept edges and their endpoints only
//	Relabel(g, rename)         // renamed copy; reports merged vertices
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – missing edge
//	ErrLoopNotAllowed – self-loop when loops disabled
package core
