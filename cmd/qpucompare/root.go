package main

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/sublattice/config"
	"github.com/katalvlaran/sublattice/topology"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfgPath   string
	solverDir string
	logLevel  string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	cmd := &cobra.Command{
		Use:   "qpucompare",
		Short: "Compare Advantage and Advantage2 processors on a shared chimera sub-lattice",
		Long: heredoc.Doc(`
			Compare two quantum annealing processors of different generations.

			Hardware graphs are read from solver-properties documents, one
			<solver>.json per system in the solver directory. Candidate placements
			of the chimera pattern on each processor are read from JSON lines files
			produced by a sublattice enumerator. The best-yield placement is chosen
			on the Advantage system first, then on the Advantage2 system, and the
			couplers surviving on both form the intersection graph.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	flags.StringVar(&a.solverDir, "solver-dir", "", "directory of <solver>.json properties files (overrides config)")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	cmd.AddCommand(newSolversCmd(a), newIntersectCmd(a), newRunCmd(a))

	return cmd
}

// init loads the configuration, applies flag overrides and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.cfgPath != "" {
		var err error
		if cfg, err = config.Load(a.cfgPath); err != nil {
			return err
		}
	}
	if a.solverDir != "" {
		cfg.SolverDir = a.solverDir
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.Level())
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))

	return nil
}

// provider reads solver properties from the configured directory.
func (a *app) provider() *topology.DirProvider {
	p := topology.NewDirProvider(a.cfg.SolverDir)
	p.Logger = a.logger

	return p
}

// newLogger builds a console logger on stderr.
func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = true

	return zc.Build()
}

// errNoEmbedding is returned when a system keeps no pattern coupler.
var errNoEmbedding = errors.New("no embedding found")
