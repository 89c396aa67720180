// Package builder assembles deterministic fixture graphs: reference patterns
// for mapping selection and defective hardware graphs to select against.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): one orchestrator creating a core.Graph
//     and applying Constructors in order.
//   - Topologies: Path, Cycle, Complete, CompleteBipartite (K_{4,4} is a
//     Chimera unit cell), Grid.
//   - Defects(rate): removes each existing coupler independently with
//     probability rate, mimicking fabrication yield on a real chip.
//   - Relabel(idFn): renames "0","1",... vertices via an ID scheme, so a
//     fixture can stand for a chip with hardware-style qubit labels.
//   - Options: WithIDScheme, WithSeed, WithRand, WithPartitionPrefix.
//
// Guarantees:
//
//   - Same inputs, options, seed and constructor order give identical graphs
//     (vertex set, edge set and edge creation order).
//   - Constructors return sentinel errors (errors.Is); option constructors
//     panic on meaningless input such as a nil ID scheme.
package builder
