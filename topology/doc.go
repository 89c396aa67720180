// Package topology loads quantum-annealer hardware graphs and the solver
// properties that come with them.
//
// A Topology couples the working graph of one solver (qubits as vertices,
// couplers as edges) with its lattice family, shape and anneal-time ranges.
// Graphs are read from solver-properties documents, never generated from
// lattice formulas:
//
//	{
//	  "qubits":   [30, 31, ...],
//	  "couplers": [[30, 31], ...],
//	  "topology": {"type": "pegasus", "shape": [16]},
//	  "annealing_time_range":   [0.5, 2000.0],
//	  "fast_anneal_time_range": [0.005, 83.0]
//	}
//
// DirProvider serves <dir>/<name>.json files and lists them as a Catalog;
// Static serves in-memory topologies.
package topology
