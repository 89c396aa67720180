// Package sampling defines the sampling-backend capability and runs Ising
// models on a processor through a mapping.
//
// RunOnSystem relabels a model defined on the intersection graph into the
// processor's qubit labels, samples it, and expands the returned records into
// one energy per read. Backend failures are returned wrapped, never
// transformed. Package anneal provides a local backend.
package sampling
