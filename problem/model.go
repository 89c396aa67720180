package problem

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/sublattice/mapping"
)

// ErrUnknownVariable is returned by Energy when a spin is missing.
var ErrUnknownVariable = errors.New("problem: spin assignment misses a variable")

// Pair is an unordered variable pair stored with U < V.
type Pair struct {
	U, V string
}

// NewPair returns the canonical pair for u, v.
func NewPair(u, v string) Pair {
	if v < u {
		u, v = v, u
	}

	return Pair{U: u, V: v}
}

// Model is an Ising model. Offset is a constant added to every energy.
type Model struct {
	Linear    map[string]float64
	Quadratic map[Pair]float64
	Offset    float64
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{
		Linear:    make(map[string]float64),
		Quadratic: make(map[Pair]float64),
	}
}

// AddVariable registers v with bias h added to any existing bias.
func (m *Model) AddVariable(v string, h float64) {
	m.Linear[v] += h
}

// AddInteraction adds J to the coupling between u and v, registering both
// variables. Self-couplings are rejected.
func (m *Model) AddInteraction(u, v string, j float64) error {
	if u == v {
		return fmt.Errorf("problem: self-coupling on %q", u)
	}
	m.AddVariable(u, 0)
	m.AddVariable(v, 0)
	m.Quadratic[NewPair(u, v)] += j

	return nil
}

// Variables returns every variable in sorted order.
func (m *Model) Variables() []string {
	vars := make([]string, 0, len(m.Linear))
	for v := range m.Linear {
		vars = append(vars, v)
	}
	sort.Strings(vars)

	return vars
}

// Interactions returns the coupled pairs sorted by (U, V).
func (m *Model) Interactions() []Pair {
	pairs := make([]Pair, 0, len(m.Quadratic))
	for p := range m.Quadratic {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].U != pairs[j].U {
			return pairs[i].U < pairs[j].U
		}
		return pairs[i].V < pairs[j].V
	})

	return pairs
}

// Energy evaluates the model on spins (values ±1).
func (m *Model) Energy(spins map[string]int8) (float64, error) {
	e := m.Offset
	for v, h := range m.Linear {
		s, ok := spins[v]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownVariable, v)
		}
		e += h * float64(s)
	}
	for p, j := range m.Quadratic {
		e += j * float64(spins[p.U]) * float64(spins[p.V])
	}

	return e, nil
}

// Relabel returns a copy of m with every variable renamed through mp. A
// variable outside mp's domain gives a *mapping.DomainError; two variables
// sharing an image have their biases and couplings summed, and a coupling
// between them moves into Offset since s*s is always 1.
func (m *Model) Relabel(mp mapping.Mapping) (*Model, error) {
	table, err := mapping.Materialize(mp, m.Variables())
	if err != nil {
		return nil, err
	}

	out := NewModel()
	out.Offset = m.Offset
	for v, h := range m.Linear {
		out.AddVariable(table[v], h)
	}
	for p, j := range m.Quadratic {
		u, v := table[p.U], table[p.V]
		if u == v {
			out.Offset += j
			continue
		}
		out.Quadratic[NewPair(u, v)] += j
	}

	return out, nil
}
