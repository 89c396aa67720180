// File: compose.go
// Role: Sequential selection across systems.
// Determinism:
//   - Systems are processed in slice order; each selection is deterministic
//     for a deterministic enumerator.

package intersect

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/sublattice/core"
	"github.com/katalvlaran/sublattice/mapping"
	"github.com/katalvlaran/sublattice/selector"
)

// Compose selects the best mapping on each system in turn, trimming the
// pattern after every step. The input pattern is not mutated.
func Compose(pattern *core.Graph, systems []System, opts ...Option) (*Intersection, error) {
	if pattern == nil {
		return nil, ErrGraphNil
	}
	if len(systems) == 0 {
		return nil, ErrNoSystems
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	for _, sys := range systems {
		if sys.Graph == nil {
			return nil, fmt.Errorf("%w: system %q", ErrGraphNil, sys.Name)
		}
		if sys.Enumerator == nil {
			return nil, fmt.Errorf("intersect: system %q: %w", sys.Name, mapping.ErrNilEnumerator)
		}
	}

	selOpts := []selector.Option{selector.WithContext(o.Ctx)}
	if o.StrictDomain {
		selOpts = append(selOpts, selector.WithStrictDomain())
	}

	out := &Intersection{Pattern: pattern, Placements: make([]Placement, 0, len(systems))}
	current := pattern
	for _, sys := range systems {
		res, err := selectOn(sys, current, selOpts)
		if err != nil {
			return nil, err
		}
		o.Logger.Debug("mapping selected",
			zap.String("system", sys.Name),
			zap.Int("candidates", res.Candidates),
			zap.Int("yield", res.Yield),
			zap.Int("pattern_edges", current.EdgeCount()),
			zap.Int("merged", res.Merged),
		)
		if !res.Found() {
			o.Logger.Warn("no candidate preserved any coupler", zap.String("system", sys.Name))
		}
		out.Placements = append(out.Placements, Placement{
			System:     sys.Name,
			Mapping:    res.Mapping,
			SubGraph:   res.SubGraph,
			Yield:      res.Yield,
			Candidates: res.Candidates,
			Merged:     res.Merged,
		})
		current = res.Reference
	}
	out.Reference = current

	for i := range out.Placements {
		out.Placements[i].Final = relabelFinal(current, out.Placements[i].Mapping)
	}

	return out, nil
}

func selectOn(sys System, current *core.Graph, selOpts []selector.Option) (*selector.Result, error) {
	res, err := selector.SelectBestMapping(sys.Graph, current, sys.Enumerator.Enumerate(current, sys.Graph), selOpts...)
	if err != nil {
		return nil, fmt.Errorf("intersect: system %q: %w", sys.Name, err)
	}
	if f, ok := sys.Enumerator.(mapping.Failer); ok {
		if err = f.Err(); err != nil {
			return nil, fmt.Errorf("intersect: system %q: enumerate: %w", sys.Name, err)
		}
	}

	return res, nil
}

// relabelFinal renames the final reference into hardware IDs. Every node of
// the final reference is an endpoint of an edge that survived on every system,
// so each mapping is defined on all of them.
func relabelFinal(final *core.Graph, m mapping.Mapping) *core.Graph {
	out, _ := core.Relabel(final, func(id string) string {
		img, _ := m.Map(id)
		return img
	})

	return out
}

// MaxChimeraSize returns the largest chimera size C(m) fitting both an
// Advantage (Pegasus P(p)) and an Advantage2 (Zephyr Z(z)) processor:
// min(p-1, 2z), never negative.
func MaxChimeraSize(pegasusShape, zephyrShape int) int {
	return max(0, min(pegasusShape-1, 2*zephyrShape))
}
