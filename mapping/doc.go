// Package mapping defines node-relabeling functions ("mappings") from a lattice
// pattern into a hardware graph, and the capability that enumerates candidate
// mappings for a pattern/target pair.
//
// What:
//
//   - Mapping: Map(node) (image, ok). ok=false means node is outside the
//     mapping's domain; callers decide whether that is an error (DomainError)
//     or simply an edge that does not survive.
//   - Table: a materialized map[string]string mapping.
//   - Func: adapter for plain functions.
//   - Empty: the mapping with an empty domain (the "no mapping selected" value).
//   - Enumerator / EnumeratorFunc: the external sublattice-enumeration capability,
//     returning a finite iter.Seq of candidates.
//   - Static: an Enumerator over a fixed list of candidates.
//   - ReadJSONL / FileEnumerator: streamed candidates, one JSON object per line.
//
// Errors:
//
//   - *DomainError           node outside a mapping's domain (errors.As)
//   - ErrNilEnumerator       nil Enumerator passed where one is required
//   - ErrDecode              malformed candidate line
package mapping
