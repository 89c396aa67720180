// Command qpucompare finds the largest chimera sub-lattice shared by an
// Advantage and an Advantage2 processor, and compares the two processors on
// random spin-glass problems placed on that sub-lattice.
//
// Usage:
//
//	qpucompare solvers --solver-dir ./solvers
//	qpucompare intersect --pattern 'patterns/chimera_{size}.json'
//	qpucompare run --pattern 'patterns/chimera_{size}.json' --precision 16 --seed 7
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
