package selector

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sublattice/core"
	"github.com/katalvlaran/sublattice/mapping"
)

// Sentinel errors for mapping selection.
var (
	// ErrGraphNil is returned when the target or reference graph is nil.
	ErrGraphNil = errors.New("selector: graph is nil")

	// ErrCandidatesNil is returned when the candidate sequence is nil.
	ErrCandidatesNil = errors.New("selector: candidate sequence is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("selector: invalid option supplied")
)

// Option configures SelectBestMapping.
type Option func(*Options)

// Options holds the selection parameters.
type Options struct {
	// Ctx is checked before each candidate; defaults to context.Background().
	Ctx context.Context

	// StrictDomain turns an edge endpoint outside a candidate's domain into a
	// *mapping.DomainError instead of a non-surviving edge.
	StrictDomain bool

	// OnCandidate is called after scoring each candidate with its zero-based
	// index and coupler yield.
	OnCandidate func(index, yield int)

	err error
}

// DefaultOptions returns lenient, uncancellable selection with no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnCandidate: func(int, int) {},
	}
}

// WithContext sets a context for cancellation between candidates.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithStrictDomain fails selection on the first edge endpoint a candidate
// cannot map.
func WithStrictDomain() Option {
	return func(o *Options) { o.StrictDomain = true }
}

// WithOnCandidate registers a progress hook.
func WithOnCandidate(fn func(index, yield int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}

// Result is the outcome of SelectBestMapping.
type Result struct {
	// SubGraph is Reference relabeled into target-graph IDs via Mapping.
	SubGraph *core.Graph

	// Reference is the edge-induced subgraph of the input reference on the
	// edges surviving under Mapping.
	Reference *core.Graph

	// Mapping is the selected candidate, or mapping.Empty if none preserved an edge.
	Mapping mapping.Mapping

	// Index is the position of Mapping in the candidate sequence, -1 if none.
	Index int

	// Yield is the coupler yield of Mapping (== Reference.EdgeCount()).
	Yield int

	// Candidates is the number of candidates scored.
	Candidates int

	// Merged counts reference nodes collapsed by a non-injective Mapping.
	Merged int
}

// Found reports whether a mapping preserving at least one edge was selected.
func (r *Result) Found() bool {
	return r != nil && r.Yield > 0
}
