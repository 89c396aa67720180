package sampling

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sublattice/core"
	"github.com/katalvlaran/sublattice/mapping"
	"github.com/katalvlaran/sublattice/problem"
)

// Sentinel errors.
var (
	// ErrNilSampler is returned when no backend is supplied.
	ErrNilSampler = errors.New("sampling: sampler is nil")

	// ErrBadParams is returned for invalid sampling parameters.
	ErrBadParams = errors.New("sampling: invalid parameters")
)

// Params are per-submission sampling parameters.
type Params struct {
	// NumReads is the number of samples requested.
	NumReads int
	// AnnealingTime in microseconds; 0 lets the backend choose.
	AnnealingTime float64
	// FastAnneal selects the fast-anneal protocol.
	FastAnneal bool
}

// Validate checks the parameters.
func (p Params) Validate() error {
	if p.NumReads < 1 {
		return fmt.Errorf("%w: num_reads %d", ErrBadParams, p.NumReads)
	}
	if p.AnnealingTime < 0 {
		return fmt.Errorf("%w: annealing_time %g", ErrBadParams, p.AnnealingTime)
	}

	return nil
}

// Record is one distinct sample with its multiplicity.
type Record struct {
	Spins          map[string]int8
	Energy         float64
	NumOccurrences int
}

// SampleSet is a backend response.
type SampleSet struct {
	Records []Record
	// Info is backend metadata (timing, problem id, ...).
	Info map[string]any
}

// Energies returns one energy per read: each record's energy repeated
// NumOccurrences times, in record order.
func (s *SampleSet) Energies() []float64 {
	if s == nil {
		return nil
	}
	n := 0
	for _, r := range s.Records {
		n += max(r.NumOccurrences, 0)
	}
	out := make([]float64, 0, n)
	for _, r := range s.Records {
		for i := 0; i < r.NumOccurrences; i++ {
			out = append(out, r.Energy)
		}
	}

	return out
}

// Lowest returns the record with the minimum energy.
func (s *SampleSet) Lowest() (Record, bool) {
	if s == nil || len(s.Records) == 0 {
		return Record{}, false
	}
	best := s.Records[0]
	for _, r := range s.Records[1:] {
		if r.Energy < best.Energy {
			best = r
		}
	}

	return best, true
}

// Sampler is a sampling backend.
type Sampler interface {
	Sample(ctx context.Context, model *problem.Model, params Params) (*SampleSet, error)
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func(ctx context.Context, model *problem.Model, params Params) (*SampleSet, error)

// Sample calls f.
func (f SamplerFunc) Sample(ctx context.Context, model *problem.Model, params Params) (*SampleSet, error) {
	return f(ctx, model, params)
}

// RunOnSystem maps model (defined on graph's nodes) into hardware labels via m,
// samples it on s, and returns per-read energies plus backend info.
func RunOnSystem(
	ctx context.Context,
	s Sampler,
	graph *core.Graph,
	m mapping.Mapping,
	params Params,
	model *problem.Model,
) ([]float64, map[string]any, error) {
	if s == nil {
		return nil, nil, ErrNilSampler
	}
	if graph == nil || model == nil {
		return nil, nil, fmt.Errorf("%w: nil graph or model", ErrBadParams)
	}
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}

	// the mapping must cover the whole graph, not just the model's variables
	table, err := mapping.Materialize(m, graph.Vertices())
	if err != nil {
		return nil, nil, fmt.Errorf("sampling: %w", err)
	}
	mapped, err := model.Relabel(table)
	if err != nil {
		return nil, nil, fmt.Errorf("sampling: %w", err)
	}

	set, err := s.Sample(ctx, mapped, params)
	if err != nil {
		return nil, nil, fmt.Errorf("sampling: backend: %w", err)
	}

	return set.Energies(), set.Info, nil
}
