package intersect

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/sublattice/core"
	"github.com/katalvlaran/sublattice/mapping"
)

// Sentinel errors.
var (
	// ErrNoSystems is returned when Compose receives no systems.
	ErrNoSystems = errors.New("intersect: no systems")

	// ErrGraphNil is returned for a nil pattern or system graph.
	ErrGraphNil = errors.New("intersect: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("intersect: invalid option supplied")
)

// System is one processor taking part in the intersection.
type System struct {
	// Name labels placements and log lines, e.g. the solver name.
	Name string
	// Graph is the hardware working graph.
	Graph *core.Graph
	// Enumerator yields candidate mappings of the current pattern into Graph.
	Enumerator mapping.Enumerator
}

// Placement is the outcome of selection on one system.
type Placement struct {
	System string
	// Mapping is the selected candidate, mapping.Empty if none preserved an edge.
	Mapping mapping.Mapping
	// SubGraph is the reference trimmed at this step, in hardware IDs.
	SubGraph *core.Graph
	// Final is the final intersection in hardware IDs.
	Final *core.Graph

	Yield      int
	Candidates int
	Merged     int
}

// Found reports whether a mapping preserving at least one edge was selected.
func (p Placement) Found() bool { return p.Yield > 0 }

// Intersection is the result of Compose.
type Intersection struct {
	// Pattern is the untrimmed input pattern.
	Pattern *core.Graph
	// Reference holds the pattern edges surviving on every system.
	Reference *core.Graph
	// Placements, one per system in processing order.
	Placements []Placement
	// Report is filled by Service.ChipIntersection and BuildReport.
	Report *Report
}

// Placement returns the placement for the named system.
func (in *Intersection) Placement(system string) (Placement, bool) {
	for _, p := range in.Placements {
		if p.System == system {
			return p, true
		}
	}

	return Placement{}, false
}

// Mappings returns the selected mapping per system name.
func (in *Intersection) Mappings() map[string]mapping.Mapping {
	out := make(map[string]mapping.Mapping, len(in.Placements))
	for _, p := range in.Placements {
		out[p.System] = p.Mapping
	}

	return out
}

// Option configures Compose and ChipIntersection.
type Option func(*Options)

// Options holds composition parameters.
type Options struct {
	Ctx          context.Context
	StrictDomain bool
	Logger       *zap.Logger

	err error
}

// DefaultOptions returns background context, lenient domain and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithStrictDomain makes unmapped pattern nodes fail selection.
func WithStrictDomain() Option {
	return func(o *Options) { o.StrictDomain = true }
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
