// Package sublattice finds the largest chimera sub-lattice shared by two
// quantum annealing processors and compares the processors on it.
//
// Packages:
//
//   - core: thread-safe undirected graph, edge-induced subgraphs, relabeling
//   - mapping: node mappings, candidate enumerators, JSON lines candidate files
//   - selector: best-yield mapping selection and graph trimming
//   - intersect: sequential composition over several systems, chip intersection
//   - topology: hardware graphs and solver catalogs from properties documents
//   - config: YAML configuration, enums, solver resolution with fallback
//   - problem: Ising models and random spin glasses
//   - sampling, sampling/anneal: sampler capability and a local annealer
//   - compare: energy summaries and shared-bin histograms
//   - serialize: opaque string codec for graphs and mappings
//   - bfs: breadth-first traversal and connected components
//   - builder: deterministic fixture graphs with coupler defects
//
// The qpucompare command under cmd/ wires them together.
package sublattice
