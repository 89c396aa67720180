// Package intersect finds the largest chimera sublattice usable on several
// quantum processors at once.
//
// What:
//
//   - Compose(pattern, systems, opts...) runs selector.SelectBestMapping once
//     per system, feeding each trimmed reference into the next call. The final
//     Reference holds the pattern edges that survive on every system.
//     Placement i keeps the mapping chosen for system i on the reference as it
//     stood at that point, so the first system chooses against the untrimmed
//     pattern and later systems against progressively trimmed ones.
//   - MaxChimeraSize(pegasus, zephyr) sizes the common chimera pattern.
//   - Service.ChipIntersection loads the Advantage and Advantage2 topologies,
//     obtains the pattern and enumerators from external sources, composes, and
//     attaches a Report.
//
// Errors:
//
//   - ErrNoSystems         Compose called with no systems
//   - ErrGraphNil          nil pattern or system graph
//   - mapping.ErrNilEnumerator
//   - enumerator failures (mapping.Failer), wrapped with the system name
//   - topology and source errors, wrapped with %w
package intersect
