// File: bfs.go
// Role: Breadth-first walks, components and diameter over coupler graphs.
// Determinism:
//   - Neighbors are expanded in sorted ID order; components are sorted.
// Concurrency:
//   - Read-only on the graph; safe to run concurrently.

package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sublattice/core"
)

// Walk explores g breadth-first from root.
func Walk(g *core.Graph, root string, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, root)
	}

	return walk(g, root, o)
}

func walk(g *core.Graph, root string, o Options) (*Tree, error) {
	t := &Tree{
		Root:   root,
		Order:  []string{root},
		Depth:  map[string]int{root: 0},
		Parent: map[string]string{},
	}
	// Order doubles as the queue: head is the next vertex to expand.
	for head := 0; head < len(t.Order); head++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		cur := t.Order[head]
		nbrs, err := g.NeighborIDs(cur)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", cur, err)
		}
		for _, n := range nbrs {
			if _, seen := t.Depth[n]; seen || !o.Follow(cur, n) {
				continue
			}
			t.Depth[n] = t.Depth[cur] + 1
			t.Parent[n] = cur
			t.Order = append(t.Order, n)
		}
	}

	return t, nil
}

// Components partitions g into connected components. Each component is sorted,
// and components are ordered by size descending, then by their smallest ID.
// Isolated vertices, and vertices whose couplers are all filtered out, form
// singleton components.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		t, err := walk(g, v, o)
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), t.Order...)
		for _, id := range comp {
			seen[id] = true
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	sort.SliceStable(comps, func(i, j int) bool {
		if len(comps[i]) != len(comps[j]) {
			return len(comps[i]) > len(comps[j])
		}
		return comps[i][0] < comps[j][0]
	})

	return comps, nil
}

// Diameter returns the largest hop distance between two connected vertices of
// g, 0 for an edgeless graph.
func Diameter(g *core.Graph, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}

	diam := 0
	for _, v := range g.Vertices() {
		t, err := walk(g, v, o)
		if err != nil {
			return 0, err
		}
		diam = max(diam, t.Eccentricity())
	}

	return diam, nil
}
