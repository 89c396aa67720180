package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrStartVertexNotFound is returned when the root ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a walk.
type Option func(*Options)

// Options holds walk parameters.
type Options struct {
	// Ctx is checked once per dequeued vertex.
	Ctx context.Context

	// Follow reports whether the coupler u-v may be crossed.
	Follow func(u, v string) bool

	err error
}

// DefaultOptions returns a background context and follows every coupler.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Follow: func(string, string) bool { return true },
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

// WithCouplerFilter only crosses couplers for which keep returns true.
// keep must be symmetric in its arguments.
func WithCouplerFilter(keep func(u, v string) bool) Option {
	return func(o *Options) {
		if keep != nil {
			o.Follow = keep
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

// Tree is a breadth-first tree rooted at Root.
type Tree struct {
	Root string
	// Order lists vertices in visit order, Root first.
	Order []string
	// Depth is the hop distance from Root.
	Depth map[string]int
	// Parent links every non-root vertex to its predecessor.
	Parent map[string]string
}

// Eccentricity returns the largest hop distance from Root.
func (t *Tree) Eccentricity() int {
	ecc := 0
	for _, d := range t.Depth {
		ecc = max(ecc, d)
	}

	return ecc
}

// PathTo returns the vertices from Root to dest, or false if dest was not reached.
func (t *Tree) PathTo(dest string) ([]string, bool) {
	if _, ok := t.Depth[dest]; !ok {
		return nil, false
	}
	path := make([]string, t.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = t.Parent[cur]
	}

	return path, true
}
