package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sublattice/config"
)

func newSolversCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solvers",
		Short: "List available Advantage and Advantage2 solvers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := config.Resolve(cmd.Context(), a.provider(), a.cfg, a.logger)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Advantage:  %s\n", strings.Join(s.AdvantageSolvers, ", "))
			fmt.Fprintf(w, "Advantage2: %s\n", strings.Join(s.Advantage2Solvers, ", "))
			fmt.Fprintf(w, "selected:   %s / %s\n", s.Advantage, s.Advantage2)
			if s.Fallback {
				return nil
			}
			for _, at := range config.AnnealTypes() {
				r := s.RangeFor(at)
				fmt.Fprintf(w, "%s time: [%g, %g] µs\n", at, r.Min, r.Max)
			}

			return nil
		},
	}
}
