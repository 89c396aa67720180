// SPDX-License-Identifier: MIT
// Package: sublattice/builder
//
// impl_bipartite.go: CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • IDs "<left><i>" and "<right><j>" from cfg prefixes.
//   • Edge order: i asc over the left side, inner j asc over the right side.
//
// K_{4,4} is the Chimera unit cell.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sublattice/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := indexIDs(SymbolNumberIDFn(cfg.leftPrefix), n1)
		right := indexIDs(SymbolNumberIDFn(cfg.rightPrefix), n2)
		if err := addVertices(g, methodCompleteBipartite, left); err != nil {
			return err
		}
		if err := addVertices(g, methodCompleteBipartite, right); err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
