// File: service.go
// Role: Chip intersection workflow over external topology, pattern and
// enumeration sources.

package intersect

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/sublattice/core"
	"github.com/katalvlaran/sublattice/mapping"
	"github.com/katalvlaran/sublattice/topology"
)

// PatternSource yields the chimera pattern graph C(size).
type PatternSource interface {
	Pattern(ctx context.Context, size int) (*core.Graph, error)
}

// PatternFunc adapts a function to PatternSource.
type PatternFunc func(ctx context.Context, size int) (*core.Graph, error)

// Pattern calls f.
func (f PatternFunc) Pattern(ctx context.Context, size int) (*core.Graph, error) {
	return f(ctx, size)
}

// StaticPattern returns g regardless of the requested size.
func StaticPattern(g *core.Graph) PatternSource {
	return PatternFunc(func(context.Context, int) (*core.Graph, error) { return g, nil })
}

// EnumeratorSource picks the sublattice enumerator for a hardware topology.
type EnumeratorSource interface {
	Enumerator(ctx context.Context, t *topology.Topology) (mapping.Enumerator, error)
}

// Enumerators maps solver names to enumerators.
type Enumerators map[string]mapping.Enumerator

// Enumerator implements EnumeratorSource.
func (e Enumerators) Enumerator(_ context.Context, t *topology.Topology) (mapping.Enumerator, error) {
	en, ok := e[t.Name]
	if !ok || en == nil {
		return nil, fmt.Errorf("intersect: no enumerator for %q: %w", t.Name, mapping.ErrNilEnumerator)
	}

	return en, nil
}

// Service runs the two-processor chip intersection.
type Service struct {
	topologies  topology.Provider
	patterns    PatternSource
	enumerators EnumeratorSource
	logger      *zap.Logger
}

// NewService wires the external collaborators. A nil logger logs nothing.
func NewService(topologies topology.Provider, patterns PatternSource, enumerators EnumeratorSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		topologies:  topologies,
		patterns:    patterns,
		enumerators: enumerators,
		logger:      logger,
	}
}

// ChipIntersection finds the highest-yield chimera intersection between an
// Advantage system and an Advantage2 system. The Advantage system is processed
// first. The returned Intersection carries a Report.
func (s *Service) ChipIntersection(ctx context.Context, advantage, advantage2 string, opts ...Option) (*Intersection, error) {
	opts = append([]Option{WithContext(ctx), WithLogger(s.logger)}, opts...)

	adv, err := s.topologies.Topology(ctx, advantage)
	if err != nil {
		return nil, fmt.Errorf("intersect: load %s: %w", advantage, err)
	}
	adv2, err := s.topologies.Topology(ctx, advantage2)
	if err != nil {
		return nil, fmt.Errorf("intersect: load %s: %w", advantage2, err)
	}

	size := MaxChimeraSize(adv.Size(), adv2.Size())
	log := s.logger.With(zap.String("advantage", advantage), zap.String("advantage2", advantage2))
	log.Info("sizing chimera intersection",
		zap.Ints("pegasus_shape", adv.Shape),
		zap.Ints("zephyr_shape", adv2.Shape),
		zap.Int("chimera_size", size),
	)

	pattern, err := s.patterns.Pattern(ctx, size)
	if err != nil {
		return nil, fmt.Errorf("intersect: pattern C(%d): %w", size, err)
	}

	systems := make([]System, 0, 2)
	for _, t := range []*topology.Topology{adv, adv2} {
		en, err := s.enumerators.Enumerator(ctx, t)
		if err != nil {
			return nil, err
		}
		systems = append(systems, System{Name: t.Name, Graph: t.Graph, Enumerator: en})
	}

	in, err := Compose(pattern, systems, opts...)
	if err != nil {
		return nil, err
	}
	rep, err := BuildReport(in)
	if err != nil {
		return nil, err
	}
	log.Info("chip intersection ready",
		zap.Int("kept_edges", rep.KeptEdges),
		zap.Int("pattern_edges", rep.PatternEdges),
		zap.Int("components", len(rep.Components)),
	)

	return in, nil
}
