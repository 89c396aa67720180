package anneal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/sublattice/problem"
	"github.com/katalvlaran/sublattice/sampling"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("anneal: invalid option supplied")

const (
	defaultSweeps               = 1000
	defaultSweepsPerMicrosecond = 10
	fastAnnealDivisor           = 4
)

// Option configures a Sampler.
type Option func(*Options)

// Options holds sampler parameters.
type Options struct {
	Sweeps               int
	SweepsPerMicrosecond float64
	// BetaHot and BetaCold override the model-derived schedule when both > 0.
	BetaHot  float64
	BetaCold float64
	// Seed 0 means time-seeded.
	Seed   int64
	Logger *zap.Logger

	err error
}

// DefaultOptions returns 1000 sweeps, 10 sweeps/µs, derived temperatures and
// a time-based seed.
func DefaultOptions() Options {
	return Options{
		Sweeps:               defaultSweeps,
		SweepsPerMicrosecond: defaultSweepsPerMicrosecond,
		Logger:               zap.NewNop(),
	}
}

// WithSweeps sets the default sweep count per read.
func WithSweeps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: sweeps %d", ErrOptionViolation, n)
			return
		}
		o.Sweeps = n
	}
}

// WithSweepsPerMicrosecond sets how anneal time converts to sweeps.
func WithSweepsPerMicrosecond(r float64) Option {
	return func(o *Options) {
		if r <= 0 {
			o.err = fmt.Errorf("%w: sweeps per microsecond %g", ErrOptionViolation, r)
			return
		}
		o.SweepsPerMicrosecond = r
	}
}

// WithBetaRange fixes the schedule's inverse temperatures.
func WithBetaRange(hot, cold float64) Option {
	return func(o *Options) {
		if hot <= 0 || cold < hot {
			o.err = fmt.Errorf("%w: beta range [%g, %g]", ErrOptionViolation, hot, cold)
			return
		}
		o.BetaHot, o.BetaCold = hot, cold
	}
}

// WithSeed fixes the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Sampler is a simulated-annealing sampling.Sampler.
type Sampler struct {
	opts Options
}

// New returns a Sampler or ErrOptionViolation.
func New(opts ...Option) (*Sampler, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Sampler{opts: o}, nil
}

// coupling is one neighbor term of a variable.
type coupling struct {
	to int
	j  float64
}

// compiled is a model in index form.
type compiled struct {
	vars []string
	h    []float64
	adj  [][]coupling
}

func compile(m *problem.Model) compiled {
	vars := m.Variables()
	index := make(map[string]int, len(vars))
	for i, v := range vars {
		index[v] = i
	}
	c := compiled{vars: vars, h: make([]float64, len(vars)), adj: make([][]coupling, len(vars))}
	for i, v := range vars {
		c.h[i] = m.Linear[v]
	}
	for _, p := range m.Interactions() {
		u, v, j := index[p.U], index[p.V], m.Quadratic[p]
		c.adj[u] = append(c.adj[u], coupling{to: v, j: j})
		c.adj[v] = append(c.adj[v], coupling{to: u, j: j})
	}

	return c
}

// betaRange derives hot/cold inverse temperatures from the largest and
// smallest single-flip energy changes.
func (c compiled) betaRange() (hot, cold float64) {
	maxDelta, minDelta := 0.0, math.Inf(1)
	for i := range c.vars {
		field := math.Abs(c.h[i])
		if a := math.Abs(c.h[i]); a > 0 {
			minDelta = min(minDelta, 2*a)
		}
		for _, cp := range c.adj[i] {
			a := math.Abs(cp.j)
			field += a
			if a > 0 {
				minDelta = min(minDelta, 2*a)
			}
		}
		maxDelta = max(maxDelta, 2*field)
	}
	if maxDelta == 0 {
		return 1, 1
	}

	return math.Log(2) / maxDelta, math.Log(100) / minDelta
}

// Sample implements sampling.Sampler. A nil ctx means context.Background().
func (s *Sampler) Sample(ctx context.Context, model *problem.Model, params sampling.Params) (*sampling.SampleSet, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: nil model", sampling.ErrBadParams)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	sweeps := s.opts.Sweeps
	if params.AnnealingTime > 0 {
		sweeps = max(1, int(math.Round(params.AnnealingTime*s.opts.SweepsPerMicrosecond)))
	}
	if params.FastAnneal {
		sweeps = max(1, sweeps/fastAnnealDivisor)
	}

	c := compile(model)
	hot, cold := s.opts.BetaHot, s.opts.BetaCold
	if hot <= 0 || cold <= 0 {
		hot, cold = c.betaRange()
	}
	schedule := geometric(hot, cold, sweeps)

	seed := s.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	spins := make([]int8, len(c.vars))
	counts := make(map[string]int)
	var order []string
	samples := make(map[string][]int8)
	for read := 0; read < params.NumReads; read++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := range spins {
			spins[i] = int8(2*r.Intn(2) - 1)
		}
		for _, beta := range schedule {
			c.sweep(spins, beta, r)
		}
		key := spinKey(spins)
		if counts[key] == 0 {
			order = append(order, key)
			samples[key] = append([]int8(nil), spins...)
		}
		counts[key]++
	}

	set := &sampling.SampleSet{Records: make([]sampling.Record, 0, len(order))}
	for _, key := range order {
		assignment := make(map[string]int8, len(c.vars))
		for i, v := range c.vars {
			assignment[v] = samples[key][i]
		}
		e, err := model.Energy(assignment)
		if err != nil {
			return nil, err
		}
		set.Records = append(set.Records, sampling.Record{Spins: assignment, Energy: e, NumOccurrences: counts[key]})
	}

	elapsed := time.Since(start)
	set.Info = map[string]any{
		"problem_id": uuid.NewString(),
		"num_reads":  params.NumReads,
		"timing": map[string]any{
			"sampling_time_us": elapsed.Microseconds(),
			"sweeps":           sweeps,
			"beta_range":       []float64{hot, cold},
			"fast_anneal":      params.FastAnneal,
		},
	}
	s.opts.Logger.Debug("annealed",
		zap.Int("variables", len(c.vars)),
		zap.Int("reads", params.NumReads),
		zap.Int("sweeps", sweeps),
		zap.Int("distinct", len(order)),
		zap.Duration("elapsed", elapsed),
	)

	return set, nil
}

// sweep performs one Metropolis pass at inverse temperature beta.
func (c compiled) sweep(spins []int8, beta float64, r *rand.Rand) {
	for i := range spins {
		field := c.h[i]
		for _, cp := range c.adj[i] {
			field += cp.j * float64(spins[cp.to])
		}
		delta := -2 * float64(spins[i]) * field
		if delta <= 0 || r.Float64() < math.Exp(-beta*delta) {
			spins[i] = -spins[i]
		}
	}
}

// geometric returns n inverse temperatures from hot to cold.
func geometric(hot, cold float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = cold
		return out
	}
	ratio := math.Pow(cold/hot, 1/float64(n-1))
	b := hot
	for i := range out {
		out[i] = b
		b *= ratio
	}

	return out
}

func spinKey(spins []int8) string {
	var b strings.Builder
	b.Grow(len(spins))
	for _, s := range spins {
		if s > 0 {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
	}

	return b.String()
}
