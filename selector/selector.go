// File: selector.go
// Role: Best-yield mapping selection and reference trimming.
// Determinism:
//   - Candidates are scored in sequence order; ties keep the earliest.
//   - Reference edges are scored in creation order.
// Concurrency:
//   - Synchronous; graphs are only read. Result graphs are fresh instances.

package selector

import (
	"iter"

	"github.com/katalvlaran/sublattice/core"
	"github.com/katalvlaran/sublattice/mapping"
)

// SelectBestMapping scores every candidate by coupler yield against target and
// returns the first candidate of maximal yield, together with the reference
// trimmed to its surviving edges and that trimmed reference renamed into target IDs.
//
// An exhausted or all-zero candidate sequence is not an error: the Result then
// carries mapping.Empty and edgeless graphs.
func SelectBestMapping(
	target, reference *core.Graph,
	candidates iter.Seq[mapping.Mapping],
	opts ...Option,
) (*Result, error) {
	if target == nil || reference == nil {
		return nil, ErrGraphNil
	}
	if candidates == nil {
		return nil, ErrCandidatesNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	edges := reference.Edges()
	res := &Result{Mapping: mapping.Empty, Index: -1}

	var scanErr error
	for m := range candidates {
		if err := o.Ctx.Err(); err != nil {
			scanErr = err
			break
		}
		y, err := score(target, edges, m, o.StrictDomain)
		if err != nil {
			scanErr = err
			break
		}
		o.OnCandidate(res.Candidates, y)
		if y > res.Yield {
			res.Mapping, res.Index, res.Yield = m, res.Candidates, y
		}
		res.Candidates++
	}
	if scanErr != nil {
		return nil, scanErr
	}

	trim(target, reference, res)

	return res, nil
}

// Yield returns the number of reference edges whose images under m are edges of
// target. Edges with an endpoint outside m's domain do not count.
func Yield(target, reference *core.Graph, m mapping.Mapping) int {
	if target == nil || reference == nil || mapping.IsEmpty(m) {
		return 0
	}
	y, _ := score(target, reference.Edges(), m, false)

	return y
}

// SurvivingEdges returns, in creation order, the reference edges preserved by m.
func SurvivingEdges(target, reference *core.Graph, m mapping.Mapping) []core.Edge {
	if target == nil || reference == nil || mapping.IsEmpty(m) {
		return nil
	}
	var out []core.Edge
	for _, e := range reference.Edges() {
		if survives(target, e, m) {
			out = append(out, e)
		}
	}

	return out
}

// score counts preserved edges. In strict mode the first unmapped endpoint is
// reported as a *mapping.DomainError.
func score(target *core.Graph, edges []core.Edge, m mapping.Mapping, strict bool) (int, error) {
	if mapping.IsEmpty(m) {
		return 0, nil
	}
	n := 0
	for _, e := range edges {
		from, okFrom := m.Map(e.From)
		to, okTo := m.Map(e.To)
		if !okFrom || !okTo {
			if strict {
				if !okFrom {
					return 0, &mapping.DomainError{Node: e.From}
				}
				return 0, &mapping.DomainError{Node: e.To}
			}
			continue
		}
		if target.HasEdge(from, to) {
			n++
		}
	}

	return n, nil
}

func survives(target *core.Graph, e core.Edge, m mapping.Mapping) bool {
	from, okFrom := m.Map(e.From)
	to, okTo := m.Map(e.To)

	return okFrom && okTo && target.HasEdge(from, to)
}

// trim fills Reference, SubGraph and Merged for the selected mapping.
func trim(target, reference *core.Graph, res *Result) {
	best := res.Mapping
	if mapping.IsEmpty(best) {
		res.Reference = core.EdgeSubgraph(reference, func(core.Edge) bool { return false })
		res.SubGraph = res.Reference.CloneEmpty()
		return
	}

	res.Reference = core.EdgeSubgraph(reference, func(e core.Edge) bool {
		return survives(target, e, best)
	})

	// every node left in the trimmed reference is an endpoint of a surviving
	// edge, so best is defined on all of them
	res.SubGraph, res.Merged = core.Relabel(res.Reference, func(id string) string {
		img, _ := best.Map(id)
		return img
	})
}
