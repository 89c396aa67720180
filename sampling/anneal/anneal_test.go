package anneal_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/sublattice/problem"
	"github.com/katalvlaran/sublattice/sampling"
	"github.com/katalvlaran/sublattice/sampling/anneal"
)

// ferroChain builds a ferromagnetic chain with a small field pinning spin "0" up.
// Its unique ground state is all spins +1.
func ferroChain(t *testing.T, n int) *problem.Model {
	t.Helper()
	m := problem.NewModel()
	for i := 0; i+1 < n; i++ {
		require.NoError(t, m.AddInteraction(string(rune('a'+i)), string(rune('a'+i+1)), -1))
	}
	m.AddVariable("a", -0.5)

	return m
}

func TestNew_Options(t *testing.T) {
	_, err := anneal.New(anneal.WithSweeps(0))
	assert.ErrorIs(t, err, anneal.ErrOptionViolation)
	_, err = anneal.New(anneal.WithBetaRange(2, 1))
	assert.ErrorIs(t, err, anneal.ErrOptionViolation)
	_, err = anneal.New(anneal.WithSweepsPerMicrosecond(-1))
	assert.ErrorIs(t, err, anneal.ErrOptionViolation)

	s, err := anneal.New(anneal.WithSweeps(10), anneal.WithSeed(1), anneal.WithLogger(nil))
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestSample_FindsGroundState(t *testing.T) {
	m := ferroChain(t, 8)
	s, err := anneal.New(anneal.WithSeed(7), anneal.WithSweeps(500))
	require.NoError(t, err)

	set, err := s.Sample(context.Background(), m, sampling.Params{NumReads: 50})
	require.NoError(t, err)

	total := 0
	for _, r := range set.Records {
		total += r.NumOccurrences
		e, err := m.Energy(r.Spins)
		require.NoError(t, err)
		assert.InDelta(t, e, r.Energy, 1e-12)
	}
	assert.Equal(t, 50, total)
	assert.Len(t, set.Energies(), 50)

	low, ok := set.Lowest()
	require.True(t, ok)
	assert.InDelta(t, -7.5, low.Energy, 1e-12)
	for _, v := range m.Variables() {
		assert.Equal(t, int8(1), low.Spins[v])
	}
}

func TestSample_AggregatesAndReportsInfo(t *testing.T) {
	m := ferroChain(t, 3)
	s, err := anneal.New(anneal.WithSeed(3))
	require.NoError(t, err)

	set, err := s.Sample(context.Background(), m, sampling.Params{NumReads: 50, AnnealingTime: 20})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(set.Records), 8, "3 spins give at most 8 distinct samples")

	id, ok := set.Info["problem_id"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, 50, set.Info["num_reads"])

	timing, ok := set.Info["timing"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 200, timing["sweeps"])
}

func TestSample_FastAnnealShortensSchedule(t *testing.T) {
	m := ferroChain(t, 3)
	s, err := anneal.New(anneal.WithSeed(3), anneal.WithSweeps(100))
	require.NoError(t, err)

	set, err := s.Sample(context.Background(), m, sampling.Params{NumReads: 1, FastAnneal: true})
	require.NoError(t, err)
	assert.Equal(t, 25, set.Info["timing"].(map[string]any)["sweeps"])
}

func TestSample_Deterministic(t *testing.T) {
	m := ferroChain(t, 6)
	run := func() []float64 {
		s, err := anneal.New(anneal.WithSeed(11), anneal.WithSweeps(5))
		require.NoError(t, err)
		set, err := s.Sample(context.Background(), m, sampling.Params{NumReads: 10})
		require.NoError(t, err)
		return set.Energies()
	}
	assert.Equal(t, run(), run())
}

func TestSample_Errors(t *testing.T) {
	s, err := anneal.New()
	require.NoError(t, err)

	_, err = s.Sample(context.Background(), nil, sampling.Params{NumReads: 1})
	assert.ErrorIs(t, err, sampling.ErrBadParams)
	_, err = s.Sample(context.Background(), problem.NewModel(), sampling.Params{})
	assert.ErrorIs(t, err, sampling.ErrBadParams)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Sample(ctx, ferroChain(t, 3), sampling.Params{NumReads: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSample_NilContext(t *testing.T) {
	s, err := anneal.New(anneal.WithSeed(5), anneal.WithSweeps(20))
	require.NoError(t, err)

	var ctx context.Context
	set, err := s.Sample(ctx, ferroChain(t, 3), sampling.Params{NumReads: 3})
	require.NoError(t, err)
	assert.Len(t, set.Energies(), 3)
}

func TestSample_EmptyModel(t *testing.T) {
	s, err := anneal.New(anneal.WithSeed(1))
	require.NoError(t, err)
	set, err := s.Sample(context.Background(), problem.NewModel(), sampling.Params{NumReads: 4})
	require.NoError(t, err)
	require.Len(t, set.Records, 1)
	assert.Equal(t, 4, set.Records[0].NumOccurrences)
	assert.Zero(t, set.Records[0].Energy)
}

func TestSample_Logs(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	s, err := anneal.New(anneal.WithSeed(1), anneal.WithSweeps(3), anneal.WithLogger(zap.New(obs)))
	require.NoError(t, err)
	_, err = s.Sample(context.Background(), ferroChain(t, 3), sampling.Params{NumReads: 2})
	require.NoError(t, err)

	entries := logs.FilterMessage("annealed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(3), entries[0].ContextMap()["variables"])
}

// the sampler plugs into RunOnSystem
var _ sampling.Sampler = (*anneal.Sampler)(nil)
