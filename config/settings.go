package config

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/sublattice/topology"
)

// NoLeapAccess is the placeholder solver listed when no catalog is reachable.
const NoLeapAccess = "No Leap Access"

// ErrAnnealTimeOutOfRange is returned for anneal times outside the common range.
var ErrAnnealTimeOutOfRange = errors.New("config: anneal time out of range")

// Settings is the resolved start-up state: solver lists and selections.
type Settings struct {
	AdvantageSolvers  []string
	Advantage2Solvers []string

	// Advantage and Advantage2 are the selected defaults.
	Advantage  string
	Advantage2 string

	// AnnealTime is the standard anneal-time range valid on both selected
	// systems; FastAnnealTime likewise for fast anneal. Zero on fallback.
	AnnealTime     topology.Range
	FastAnnealTime topology.Range

	// Fallback is set when the catalog was unusable.
	Fallback bool

	solvers map[string]topology.Solver
}

// Resolve lists the catalog's Advantage and Advantage2 solvers and selects
// defaults, preferring the configured names. If the catalog fails or either
// family is empty, both lists fall back to [NoLeapAccess] and a warning is
// logged; Resolve itself never fails.
func Resolve(ctx context.Context, catalog topology.Catalog, cfg *Config, logger *zap.Logger) Settings {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = Default()
	}

	var solvers []topology.Solver
	var err error
	if catalog == nil {
		err = errors.New("no solver catalog configured")
	} else {
		solvers, err = catalog.Solvers(ctx)
	}
	adv := topology.FilterFamily(solvers, topology.FamilyAdvantage)
	adv2 := topology.FilterFamily(solvers, topology.FamilyAdvantage2)
	if err == nil && (len(adv) == 0 || len(adv2) == 0) {
		err = fmt.Errorf("catalog lists %d Advantage and %d Advantage2 solvers", len(adv), len(adv2))
	}
	if err != nil {
		logger.Warn("solver catalog unavailable, falling back", zap.Error(err))
		return Settings{
			AdvantageSolvers:  []string{NoLeapAccess},
			Advantage2Solvers: []string{NoLeapAccess},
			Advantage:         NoLeapAccess,
			Advantage2:        NoLeapAccess,
			Fallback:          true,
		}
	}

	s := Settings{
		AdvantageSolvers:  names(adv),
		Advantage2Solvers: names(adv2),
		solvers:           make(map[string]topology.Solver, len(solvers)),
	}
	for _, sv := range solvers {
		s.solvers[sv.Name] = sv
	}
	s.Advantage = pick(s.AdvantageSolvers, cfg.DefaultAdvantage)
	s.Advantage2 = pick(s.Advantage2Solvers, cfg.DefaultAdvantage2)
	s.AnnealTime, s.FastAnnealTime = s.commonRanges(s.Advantage, s.Advantage2)

	logger.Info("solvers resolved",
		zap.Strings("advantage", s.AdvantageSolvers),
		zap.Strings("advantage2", s.Advantage2Solvers),
		zap.String("selected_advantage", s.Advantage),
		zap.String("selected_advantage2", s.Advantage2),
		zap.Float64("anneal_min", s.AnnealTime.Min),
		zap.Float64("anneal_max", s.AnnealTime.Max),
	)

	return s
}

// Select changes the selected pair and recomputes the common ranges.
func (s *Settings) Select(advantage, advantage2 string) error {
	if s.Fallback {
		return fmt.Errorf("config: no solvers available: %w", topology.ErrSolverNotFound)
	}
	if !slices.Contains(s.AdvantageSolvers, advantage) {
		return fmt.Errorf("config: %q: %w", advantage, topology.ErrSolverNotFound)
	}
	if !slices.Contains(s.Advantage2Solvers, advantage2) {
		return fmt.Errorf("config: %q: %w", advantage2, topology.ErrSolverNotFound)
	}
	s.Advantage, s.Advantage2 = advantage, advantage2
	s.AnnealTime, s.FastAnnealTime = s.commonRanges(advantage, advantage2)

	return nil
}

// RangeFor returns the common anneal-time range for the anneal type.
func (s *Settings) RangeFor(at AnnealType) topology.Range {
	if at == AnnealFast {
		return s.FastAnnealTime
	}

	return s.AnnealTime
}

// CheckAnnealTime validates t against RangeFor(at).
func (s *Settings) CheckAnnealTime(t float64, at AnnealType) error {
	r := s.RangeFor(at)
	if t < r.Min || t > r.Max {
		return fmt.Errorf("%w: %g not in [%g, %g] for %s", ErrAnnealTimeOutOfRange, t, r.Min, r.Max, at)
	}

	return nil
}

// commonRanges intersects the two systems' ranges: [max of minima, min of maxima].
func (s *Settings) commonRanges(a, b string) (standard, fast topology.Range) {
	sa, oka := s.solvers[a]
	sb, okb := s.solvers[b]
	if !oka || !okb || topology.Family(a) != topology.FamilyAdvantage || topology.Family(b) != topology.FamilyAdvantage2 {
		return topology.Range{}, topology.Range{}
	}

	return overlap(sa.AnnealingTimeRange, sb.AnnealingTimeRange),
		overlap(sa.FastAnnealTimeRange, sb.FastAnnealTimeRange)
}

func overlap(a, b topology.Range) topology.Range {
	r := topology.Range{Min: max(a.Min, b.Min), Max: min(a.Max, b.Max)}
	if !r.Valid() {
		return topology.Range{}
	}

	return r
}

func names(solvers []topology.Solver) []string {
	out := make([]string, len(solvers))
	for i, s := range solvers {
		out[i] = s.Name
	}

	return out
}

func pick(options []string, preferred string) string {
	if slices.Contains(options, preferred) {
		return preferred
	}

	return options[0]
}
