package main

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sublattice/compare"
	"github.com/katalvlaran/sublattice/config"
	"github.com/katalvlaran/sublattice/problem"
	"github.com/katalvlaran/sublattice/sampling"
	"github.com/katalvlaran/sublattice/sampling/anneal"
)

type runFlags struct {
	intersectFlags
	annealType string
	annealTime float64
	precision  int
	scheme     string
	seed       int64
	numReads   int
	bins       int
	sweeps     int
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sample a random spin glass on both processors and compare energies",
		Long: heredoc.Doc(`
			Build the chip intersection, draw a random spin glass on it and sample
			the same problem on both systems through the local annealer. Each
			system receives the problem relabeled into its own qubits.

			Zero-valued numeric flags take their value from the configuration.
			A zero seed draws a time-based seed.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, &f)
		},
	}
	f.register(cmd)
	flags := cmd.Flags()
	flags.StringVar(&f.annealType, "anneal-type", config.AnnealStandard.String(), "Standard or Fast anneal")
	flags.Float64Var(&f.annealTime, "anneal-time", 0, "annealing time in microseconds (0: backend default)")
	flags.IntVar(&f.precision, "precision", 0, "number of distinct coupling magnitudes")
	flags.StringVar(&f.scheme, "scheme", config.SchemeUniform.String(), "Uniform or Power Law coupling scheme")
	flags.Int64Var(&f.seed, "seed", 0, "random seed for the problem and the sampler")
	flags.IntVar(&f.numReads, "num-reads", 0, "reads per system")
	flags.IntVar(&f.bins, "bins", 0, "histogram bins")
	flags.IntVar(&f.sweeps, "sweeps", 1000, "annealer sweeps per read when no anneal time is given")

	return cmd
}

func (a *app) run(cmd *cobra.Command, f *runFlags) error {
	ctx := cmd.Context()
	runID := uuid.New()
	log := a.logger.With(zap.Stringer("run_id", runID))

	at, err := config.ParseAnnealType(f.annealType)
	if err != nil {
		return err
	}
	scheme, err := config.ParseSchemeType(f.scheme)
	if err != nil {
		return err
	}
	precision := cmp.Or(f.precision, a.cfg.PrecisionDefault)
	if !slices.Contains(a.cfg.PrecisionOptions, precision) {
		return fmt.Errorf("precision %d is not one of %v", precision, a.cfg.PrecisionOptions)
	}
	params := sampling.Params{
		NumReads:      cmp.Or(f.numReads, a.cfg.NumReads),
		AnnealingTime: f.annealTime,
		FastAnneal:    at == config.AnnealFast,
	}
	if err = params.Validate(); err != nil {
		return err
	}

	in, settings, err := a.intersection(ctx, &f.intersectFlags)
	if err != nil {
		return err
	}
	if err = requireEmbedding(in); err != nil {
		return err
	}
	if f.annealTime > 0 {
		if err = settings.CheckAnnealTime(f.annealTime, at); err != nil {
			return err
		}
	}

	model, err := problem.SpinGlass(in.Reference, scheme, precision, f.seed)
	if err != nil {
		return err
	}
	sampler, err := anneal.New(anneal.WithSweeps(f.sweeps), anneal.WithSeed(f.seed), anneal.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info("sampling",
		zap.Stringer("anneal_type", at),
		zap.Stringer("scheme", scheme),
		zap.Int("precision", precision),
		zap.Int("variables", len(model.Linear)),
		zap.Int("couplings", len(model.Quadratic)),
	)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "run %s\n", runID)
	writeReport(w, in.Report)

	series := make([]compare.Series, 0, len(in.Placements))
	names := make([]string, 0, len(in.Placements))
	sums := make([]compare.Summary, 0, len(in.Placements))
	for _, p := range in.Placements {
		energies, info, err := sampling.RunOnSystem(ctx, sampler, in.Reference, p.Mapping, params, model)
		if err != nil {
			return fmt.Errorf("%s: %w", p.System, err)
		}
		log.Debug("sampled", zap.String("system", p.System), zap.Any("info", info))
		series = append(series, compare.Series{Name: p.System, Values: energies})
		names = append(names, p.System)
		sums = append(sums, compare.Summarize(energies))
	}

	fmt.Fprintln(w)
	if err = compare.WriteSummaries(w, names, sums); err != nil {
		return err
	}
	tbl, err := compare.Histogram(series, cmp.Or(f.bins, a.cfg.Bins))
	if err != nil {
		return err
	}
	fmt.Fprintln(w)

	return tbl.Write(w)
}
