// Package serialize converts graphs and mapping tables to opaque strings and
// back, for handing intersection state across process boundaries (a CLI
// invocation to the next, a web session store, a job queue).
//
// The opaque form is base64 (standard, padded) of a JSON document:
//
//	graph:   {"nodes": ["0", "1", ...], "edges": [["0", "1"], ...]}
//	mapping: {"0": "128", "1": "133", ...}
//
// Nodes are listed sorted and edges in creation order, so a decoded graph
// reproduces the original's Vertices() and EdgePairs() exactly. ReadGraph and
// WriteGraph handle the plain JSON document, used for pattern files.
package serialize
