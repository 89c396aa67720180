package topology

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/sublattice/core"
)

// properties is the subset of a solver-properties document we read.
type properties struct {
	Qubits   []int    `json:"qubits"`
	Couplers [][2]int `json:"couplers"`
	Topology struct {
		Type  string `json:"type"`
		Shape []int  `json:"shape"`
	} `json:"topology"`
	AnnealingTimeRange  []float64 `json:"annealing_time_range"`
	FastAnnealTimeRange []float64 `json:"fast_anneal_time_range"`
}

// Decode parses a solver-properties document for solver name.
// Couplers touching unknown qubits are rejected.
func Decode(name string, r io.Reader) (*Topology, error) {
	var p properties
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadProperties, name, err)
	}
	t, err := p.solver(name)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph()
	for _, q := range p.Qubits {
		if err = g.AddVertex(strconv.Itoa(q)); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBadProperties, name, err)
		}
	}
	for _, c := range p.Couplers {
		u, v := strconv.Itoa(c[0]), strconv.Itoa(c[1])
		if !g.HasVertex(u) || !g.HasVertex(v) {
			return nil, fmt.Errorf("%w: %s: coupler (%s,%s) references an inactive qubit", ErrBadProperties, name, u, v)
		}
		if _, err = g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("%w: %s: coupler (%s,%s): %v", ErrBadProperties, name, u, v, err)
		}
	}

	return &Topology{
		Name:                t.Name,
		Family:              t.Family,
		Lattice:             t.Lattice,
		Shape:               p.Topology.Shape,
		Graph:               g,
		AnnealingTimeRange:  t.AnnealingTimeRange,
		FastAnnealTimeRange: t.FastAnnealTimeRange,
	}, nil
}

// DecodeSolver parses only the catalog fields of a properties document.
func DecodeSolver(name string, r io.Reader) (Solver, error) {
	var p properties
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Solver{}, fmt.Errorf("%w: %s: %v", ErrBadProperties, name, err)
	}

	return p.solver(name)
}

func (p *properties) solver(name string) (Solver, error) {
	if len(p.Topology.Shape) == 0 {
		return Solver{}, fmt.Errorf("%w: %s: missing topology shape", ErrBadProperties, name)
	}
	anneal, err := toRange(p.AnnealingTimeRange)
	if err != nil {
		return Solver{}, fmt.Errorf("%w: %s: annealing_time_range: %v", ErrBadProperties, name, err)
	}
	// fast anneal is optional on older systems
	var fast Range
	if len(p.FastAnnealTimeRange) > 0 {
		if fast, err = toRange(p.FastAnnealTimeRange); err != nil {
			return Solver{}, fmt.Errorf("%w: %s: fast_anneal_time_range: %v", ErrBadProperties, name, err)
		}
	}

	return Solver{
		Name:                name,
		Family:              Family(name),
		Lattice:             p.Topology.Type,
		AnnealingTimeRange:  anneal,
		FastAnnealTimeRange: fast,
	}, nil
}

func toRange(v []float64) (Range, error) {
	if len(v) != 2 {
		return Range{}, fmt.Errorf("want [min, max], got %d values", len(v))
	}
	r := Range{Min: v[0], Max: v[1]}
	if !r.Valid() {
		return Range{}, fmt.Errorf("invalid range [%g, %g]", r.Min, r.Max)
	}

	return r, nil
}
