package topology

import (
	"context"
	"errors"
	"strings"

	"github.com/katalvlaran/sublattice/core"
)

// Sentinel errors for topology loading.
var (
	// ErrSolverNotFound is returned when no solver has the requested name.
	ErrSolverNotFound = errors.New("topology: solver not found")

	// ErrBadProperties is returned for malformed solver-properties documents.
	ErrBadProperties = errors.New("topology: malformed solver properties")
)

// Family names derived from solver names.
const (
	FamilyAdvantage  = "Advantage"
	FamilyAdvantage2 = "Advantage2"
)

// Lattice types as reported in the "topology" property.
const (
	LatticeChimera = "chimera"
	LatticePegasus = "pegasus"
	LatticeZephyr  = "zephyr"
)

// Range is a closed interval of anneal times in microseconds.
type Range struct {
	Min float64
	Max float64
}

// Valid reports whether the range is non-empty and non-negative.
func (r Range) Valid() bool { return r.Min >= 0 && r.Min <= r.Max }

// Topology is a solver's working graph plus lattice metadata.
type Topology struct {
	// Name is the solver name, e.g. "Advantage_system4.1".
	Name string
	// Family is FamilyAdvantage, FamilyAdvantage2 or the raw name prefix.
	Family string
	// Lattice is the topology type, e.g. LatticePegasus.
	Lattice string
	// Shape is the lattice shape; Shape[0] is the size parameter.
	Shape []int
	// Graph is the working graph. Callers must not mutate it.
	Graph *core.Graph

	AnnealingTimeRange  Range
	FastAnnealTimeRange Range
}

// Size returns Shape[0], or 0 for an empty shape.
func (t *Topology) Size() int {
	if t == nil || len(t.Shape) == 0 {
		return 0
	}

	return t.Shape[0]
}

// Solver is a catalog entry: a topology without its graph.
type Solver struct {
	Name                string
	Family              string
	Lattice             string
	AnnealingTimeRange  Range
	FastAnnealTimeRange Range
}

// Provider yields hardware topologies by solver name.
type Provider interface {
	Topology(ctx context.Context, name string) (*Topology, error)
}

// Catalog lists the available solvers.
type Catalog interface {
	Solvers(ctx context.Context) ([]Solver, error)
}

// Family returns the solver family: the name prefix before the first "_".
// "Advantage2_system1.2" → "Advantage2", "Advantage_system4.1" → "Advantage".
func Family(name string) string {
	family, _, _ := strings.Cut(name, "_")

	return family
}

// FilterFamily returns the solvers of the given family, order preserved.
func FilterFamily(solvers []Solver, family string) []Solver {
	var out []Solver
	for _, s := range solvers {
		if s.Family == family {
			out = append(out, s)
		}
	}

	return out
}
