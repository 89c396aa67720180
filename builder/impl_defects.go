// SPDX-License-Identifier: MIT
// Package: sublattice/builder
//
// impl_defects.go: Defects(rate) and Relabel(idFn) post-processing constructors.
//
// Contract:
//   • Defects: 0 ≤ rate ≤ 1 (else ErrInvalidProbability); requires cfg.rng
//     (else ErrNeedRandSource). Edges are visited in creation order and each is
//     removed with probability rate, so one seed always removes the same set.
//     Vertices are kept: a qubit with all couplers broken is still a qubit.
//   • Relabel: renames every vertex by parsing its decimal ID and passing it
//     through idFn. Non-decimal IDs or colliding images give ErrConstructFailed.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/sublattice/core"
)

const (
	methodDefects = "Defects"
	methodRelabel = "Relabel"
)

// Defects returns a Constructor that deletes a random fraction of the edges
// already present in g.
func Defects(rate float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("%s: rate=%g: %w", methodDefects, rate, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodDefects, ErrNeedRandSource)
		}
		for _, e := range g.Edges() {
			if cfg.rng.Float64() >= rate {
				continue
			}
			if err := g.RemoveEdge(e.ID); err != nil {
				return fmt.Errorf("%s: RemoveEdge(%s): %w", methodDefects, e.ID, err)
			}
		}

		return nil
	}
}

// Relabel returns a Constructor that renames decimal vertex IDs through idFn,
// replacing the contents of g in place.
func Relabel(idFn IDFn) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if idFn == nil {
			return fmt.Errorf("%s: nil IDFn: %w", methodRelabel, ErrConstructFailed)
		}
		rename := make(map[string]string, g.VertexCount())
		for _, id := range g.Vertices() {
			idx, err := strconv.Atoi(id)
			if err != nil || idx < 0 {
				return fmt.Errorf("%s: vertex %q is not a decimal index: %w", methodRelabel, id, ErrConstructFailed)
			}
			rename[id] = idFn(idx)
		}
		out, merged := core.Relabel(g, func(id string) string { return rename[id] })
		if merged > 0 {
			return fmt.Errorf("%s: %d vertices collide: %w", methodRelabel, merged, ErrConstructFailed)
		}

		g.Clear()
		for _, id := range out.Vertices() {
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRelabel, id, err)
			}
		}
		for _, e := range out.Edges() {
			if err := addEdge(g, methodRelabel, e.From, e.To); err != nil {
				return err
			}
		}

		return nil
	}
}
