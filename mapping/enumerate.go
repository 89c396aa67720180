package mapping

import (
	"iter"
	"slices"

	"github.com/katalvlaran/sublattice/core"
)

// Enumerator produces the candidate mappings of pattern into target.
//
// Implementations wrap the external sublattice-enumeration routine. The returned
// sequence must be finite; it is consumed once, and its order decides ties.
type Enumerator interface {
	Enumerate(pattern, target *core.Graph) iter.Seq[Mapping]
}

// EnumeratorFunc adapts a function to Enumerator.
type EnumeratorFunc func(pattern, target *core.Graph) iter.Seq[Mapping]

// Enumerate calls f(pattern, target).
func (f EnumeratorFunc) Enumerate(pattern, target *core.Graph) iter.Seq[Mapping] {
	return f(pattern, target)
}

// Failer is implemented by enumerators whose sequence can stop early on an
// I/O or decode failure. Err reports the failure of the most recent Enumerate.
type Failer interface {
	Err() error
}

// Static returns an Enumerator yielding the given candidates in order,
// regardless of the pattern and target.
func Static(candidates ...Mapping) Enumerator {
	fixed := slices.Clone(candidates)
	return EnumeratorFunc(func(*core.Graph, *core.Graph) iter.Seq[Mapping] {
		return slices.Values(fixed)
	})
}
