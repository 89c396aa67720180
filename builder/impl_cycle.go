// SPDX-License-Identifier: MIT
// Package: sublattice/builder
//
// impl_cycle.go: Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges i-(i+1)%n for i=0..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sublattice/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := indexIDs(cfg.idFn, n)
		if err := addVertices(g, methodCycle, ids); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
