// SPDX-License-Identifier: MIT
// Package: sublattice/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1)-i for i=1..n-1 in increasing order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sublattice/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := indexIDs(cfg.idFn, n)
		if err := addVertices(g, methodPath, ids); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
