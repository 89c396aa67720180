// Package anneal is a local simulated-annealing sampler for Ising models. It
// stands in for a quantum processor in offline runs and tests.
//
// Each read starts from uniformly random spins and performs Metropolis sweeps
// over the variables in sorted order while the inverse temperature rises
// geometrically from a hot to a cold value. The default temperatures derive
// from the model: hot β = ln 2 / ΔE_max, cold β = ln 100 / ΔE_min.
//
// Sweep count: WithSweeps (default 1000). A non-zero Params.AnnealingTime
// replaces it with AnnealingTime × SweepsPerMicrosecond; Params.FastAnneal
// runs a quarter of the sweeps. Identical samples are aggregated into one
// record with an occurrence count.
package anneal
