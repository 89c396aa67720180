package problem

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/sublattice/config"
	"github.com/katalvlaran/sublattice/core"
)

// Sentinel errors for spin-glass generation.
var (
	// ErrBadPrecision is returned for a precision below 1.
	ErrBadPrecision = errors.New("problem: precision must be positive")

	// ErrUnknownScheme is returned for an unsupported coupling scheme.
	ErrUnknownScheme = errors.New("problem: unknown coupling scheme")

	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("problem: graph is nil")
)

// SpinGlass returns a random spin glass on g: one coupling per edge, zero
// fields, every vertex a variable. Edges are visited in creation order, so a
// non-zero seed reproduces the model exactly; seed 0 draws a time-based seed.
func SpinGlass(g *core.Graph, scheme config.SchemeType, precision int, seed int64) (*Model, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if precision < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadPrecision, precision)
	}
	var draw func(r *rand.Rand) int
	switch scheme {
	case config.SchemeUniform:
		draw = func(r *rand.Rand) int { return 1 + r.Intn(precision) }
	case config.SchemePowerLaw:
		draw = powerLaw(precision)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, scheme)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	m := NewModel()
	for _, v := range g.Vertices() {
		m.AddVariable(v, 0)
	}
	for _, e := range g.Edges() {
		j := float64(draw(r)) / float64(precision)
		if r.Intn(2) == 0 {
			j = -j
		}
		if err := m.AddInteraction(e.From, e.To, j); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// powerLaw returns a sampler of k in 1..n with P(k) ∝ k⁻², by inverting the
// cumulative distribution.
func powerLaw(n int) func(r *rand.Rand) int {
	cdf := make([]float64, n)
	var total float64
	for k := 1; k <= n; k++ {
		total += 1 / float64(k*k)
		cdf[k-1] = total
	}

	return func(r *rand.Rand) int {
		u := r.Float64() * total
		lo, hi := 0, n-1
		for lo < hi {
			mid := (lo + hi) / 2
			if cdf[mid] < u {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		return lo + 1
	}
}
