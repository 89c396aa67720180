// Package selector picks, among externally enumerated candidate mappings of a
// lattice pattern into a hardware graph, the one that preserves the most
// couplers, and trims the pattern to the couplers that survive.
//
// What:
//
//   - SelectBestMapping(target, reference, candidates, opts...) scans the finite
//     candidate sequence once. The coupler yield of a candidate m is the number
//     of reference edges (u,v) for which (m(u), m(v)) is an edge of target, in
//     either orientation. The first candidate with the strictly largest yield wins.
//   - The winning mapping's surviving edges define Result.Reference, the
//     edge-induced subgraph of the reference (nodes left without a surviving edge
//     are dropped), and Result.SubGraph, that subgraph renamed into target IDs.
//   - Yield and SurvivingEdges expose the scoring predicate on its own.
//
// Inputs are never mutated. Feeding Result.Reference into the next call is how
// callers intersect a pattern across several chips (see package intersect).
//
// Policy:
//
//   - No candidates, or only zero-yield ones: not an error. Result.Mapping is
//     mapping.Empty, Result.Reference has no edges, Result.Found() is false.
//   - An edge endpoint outside a candidate's domain: by default the edge simply
//     does not survive. WithStrictDomain() turns it into a *mapping.DomainError.
//   - Non-injective winners: SubGraph merges nodes sharing an image;
//     Result.Merged counts the collapsed nodes.
//
// Complexity:
//
//   - Time O(C·E) for C candidates and E reference edges (O(1) HasEdge on target),
//     plus O(E·log E) for the final trim.
//
// Errors:
//
//   - ErrGraphNil          target or reference is nil
//   - ErrCandidatesNil     candidate sequence is nil
//   - ErrOptionViolation   invalid option
//   - *mapping.DomainError strict mode only
//   - ctx.Err()            context cancelled between candidates
package selector
