package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sublattice/config"
	"github.com/katalvlaran/sublattice/core"
	"github.com/katalvlaran/sublattice/intersect"
	"github.com/katalvlaran/sublattice/mapping"
	"github.com/katalvlaran/sublattice/serialize"
	"github.com/katalvlaran/sublattice/topology"
)

// sizePlaceholder in a pattern path is replaced by the chimera size.
const sizePlaceholder = "{size}"

// intersectFlags are shared by intersect and run.
type intersectFlags struct {
	advantage  string
	advantage2 string
	pattern    string
	candidates map[string]string
	strict     bool
}

func (f *intersectFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.advantage, "advantage", "", "Advantage solver name (default from config)")
	flags.StringVar(&f.advantage2, "advantage2", "", "Advantage2 solver name (default from config)")
	flags.StringVar(&f.pattern, "pattern", "", "chimera pattern graph file; "+sizePlaceholder+" expands to the chimera size")
	flags.StringToStringVar(&f.candidates, "candidates", nil, "solver=path of a JSON lines candidate file (default <solver-dir>/<solver>.jsonl)")
	flags.BoolVar(&f.strict, "strict", false, "fail when a candidate does not cover every pattern node")
	_ = cmd.MarkFlagRequired("pattern")
}

// intersection resolves the solver pair and runs the chip intersection.
func (a *app) intersection(ctx context.Context, f *intersectFlags) (*intersect.Intersection, config.Settings, error) {
	provider := a.provider()
	settings := config.Resolve(ctx, provider, a.cfg, a.logger)
	if settings.Fallback {
		return nil, settings, fmt.Errorf("no solvers in %s: %w", a.cfg.SolverDir, topology.ErrSolverNotFound)
	}
	adv, adv2 := settings.Advantage, settings.Advantage2
	if f.advantage != "" {
		adv = f.advantage
	}
	if f.advantage2 != "" {
		adv2 = f.advantage2
	}
	if err := settings.Select(adv, adv2); err != nil {
		return nil, settings, err
	}

	enumerators := intersect.Enumerators{}
	for _, name := range []string{adv, adv2} {
		path, ok := f.candidates[name]
		if !ok {
			path = filepath.Join(a.cfg.SolverDir, name+".jsonl")
		}
		enumerators[name] = &mapping.FileEnumerator{Path: path}
	}

	svc := intersect.NewService(provider, patternFile(f.pattern), enumerators, a.logger)
	var opts []intersect.Option
	if f.strict {
		opts = append(opts, intersect.WithStrictDomain())
	}
	in, err := svc.ChipIntersection(ctx, adv, adv2, opts...)
	if err != nil {
		return nil, settings, err
	}

	return in, settings, nil
}

// patternFile reads the pattern for the requested size from path.
func patternFile(path string) intersect.PatternSource {
	return intersect.PatternFunc(func(_ context.Context, size int) (*core.Graph, error) {
		fh, err := os.Open(strings.ReplaceAll(path, sizePlaceholder, strconv.Itoa(size)))
		if err != nil {
			return nil, err
		}
		defer fh.Close()

		return serialize.ReadGraph(fh)
	})
}

// requireEmbedding fails when any system kept no coupler.
func requireEmbedding(in *intersect.Intersection) error {
	for _, p := range in.Placements {
		if !p.Found() {
			return fmt.Errorf("%s: %w", p.System, errNoEmbedding)
		}
	}

	return nil
}

func newIntersectCmd(a *app) *cobra.Command {
	var (
		f      intersectFlags
		asJSON bool
		encode bool
	)
	cmd := &cobra.Command{
		Use:   "intersect",
		Short: "Find the highest-yield chimera intersection of two processors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, _, err := a.intersection(cmd.Context(), &f)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch {
			case encode:
				return writeEncoded(w, in)
			case asJSON:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(in.Report)
			}
			writeReport(w, in.Report)
			if err = requireEmbedding(in); err != nil {
				a.logger.Warn("intersection is empty", zap.Error(err))
			}

			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&encode, "encode", false, "print the intersection state in its opaque encoded form")
	cmd.MarkFlagsMutuallyExclusive("json", "encode")

	return cmd
}

func writeReport(w io.Writer, r *intersect.Report) {
	fmt.Fprintf(w, "pattern:  %d qubits, %d couplers\n", r.PatternNodes, r.PatternEdges)
	fmt.Fprintf(w, "kept:     %d qubits, %d couplers (%.1f%%)\n", r.KeptNodes, r.KeptEdges, 100*r.EdgeRetention())
	fmt.Fprintf(w, "dropped:  %d qubits, %d couplers\n", len(r.DroppedNodes), r.DroppedEdges)
	fmt.Fprintf(w, "components: %v, diameter %d\n", r.Components, r.Diameter)
	for _, s := range r.Systems {
		fmt.Fprintf(w, "%s: yield %d over %d candidates, %d merged, %d qubits, largest placed component %d\n",
			s.System, s.Yield, s.Candidates, s.Merged, len(s.Qubits), s.LargestComponent)
	}
}

// encodedState is the opaque form of an intersection.
type encodedState struct {
	Pattern   string            `json:"pattern"`
	Reference string            `json:"reference"`
	Mappings  map[string]string `json:"mappings"`
}

func writeEncoded(w io.Writer, in *intersect.Intersection) error {
	var (
		st  = encodedState{Mappings: make(map[string]string, len(in.Placements))}
		err error
	)
	if st.Pattern, err = serialize.EncodeGraph(in.Pattern); err != nil {
		return err
	}
	if st.Reference, err = serialize.EncodeGraph(in.Reference); err != nil {
		return err
	}
	for _, p := range in.Placements {
		if st.Mappings[p.System], err = serialize.EncodeMapping(p.Mapping, in.Reference); err != nil {
			return err
		}
	}

	return json.NewEncoder(w).Encode(st)
}
