package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sublattice/config"
	"github.com/katalvlaran/sublattice/intersect"
	"github.com/katalvlaran/sublattice/serialize"
)

const (
	advName  = "Advantage_system4.1"
	adv2Name = "Advantage2_system1.2"
)

// fixture lays out a solver directory with two small chips and a 4-cycle
// pattern. The Advantage2 chip misses coupler 23-20, so three of the four
// pattern couplers survive.
func fixture(t *testing.T) (dir, pattern string) {
	t.Helper()
	dir = t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}
	write(advName+".json", `{
		"qubits": [10, 11, 12, 13],
		"couplers": [[10, 11], [11, 12], [12, 13], [13, 10]],
		"topology": {"type": "pegasus", "shape": [3]},
		"annealing_time_range": [0.5, 2000],
		"fast_anneal_time_range": [0.005, 0.02]
	}`)
	write(adv2Name+".json", `{
		"qubits": [20, 21, 22, 23],
		"couplers": [[20, 21], [21, 22], [22, 23]],
		"topology": {"type": "zephyr", "shape": [1, 4]},
		"annealing_time_range": [1, 1000],
		"fast_anneal_time_range": [0.01, 0.02]
	}`)
	write(advName+".jsonl", `{"0": 10, "1": 11, "2": 12, "3": 13}`+"\n")
	write(adv2Name+".jsonl", `{"0": 23, "1": 22, "2": 21, "3": 20}`+"\n"+`{"0": 20, "1": 21, "2": 22, "3": 23}`+"\n")

	// kept apart: every *.json in the solver directory is a solver
	patterns := t.TempDir()
	// MaxChimeraSize(3, 1) == 2
	body := `{"nodes": ["0", "1", "2", "3"], "edges": [["0", "1"], ["1", "2"], ["2", "3"], ["3", "0"]]}`
	require.NoError(t, os.WriteFile(filepath.Join(patterns, "chimera_2.json"), []byte(body), 0o600))

	return dir, filepath.Join(patterns, "chimera_{size}.json")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestSolvers(t *testing.T) {
	dir, _ := fixture(t)
	out, err := execute(t, "solvers", "--solver-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Advantage:  "+advName)
	assert.Contains(t, out, "Advantage2: "+adv2Name)
	assert.Contains(t, out, "Standard Anneal time: [1, 1000] µs")
	assert.Contains(t, out, "Fast Anneal time: [0.01, 0.02] µs")
}

func TestSolvers_Fallback(t *testing.T) {
	out, err := execute(t, "solvers", "--solver-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, config.NoLeapAccess)
	assert.NotContains(t, out, "time:")
}

func TestIntersect_Text(t *testing.T) {
	dir, pattern := fixture(t)
	out, err := execute(t, "intersect", "--solver-dir", dir, "--pattern", pattern)
	require.NoError(t, err)
	assert.Contains(t, out, "kept:     4 qubits, 3 couplers (75.0%)")
	assert.Contains(t, out, "components: [4], diameter 3")
	assert.Contains(t, out, adv2Name+": yield 3 over 2 candidates")
}

func TestIntersect_JSON(t *testing.T) {
	dir, pattern := fixture(t)
	out, err := execute(t, "intersect", "--solver-dir", dir, "--pattern", pattern, "--json")
	require.NoError(t, err)

	var rep intersect.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 4, rep.PatternEdges)
	assert.Equal(t, 3, rep.KeptEdges)
	assert.Equal(t, []int{4}, rep.Components)
	assert.Equal(t, 3, rep.Diameter)
}

func TestIntersect_Encode(t *testing.T) {
	dir, pattern := fixture(t)
	out, err := execute(t, "intersect", "--solver-dir", dir, "--pattern", pattern, "--encode")
	require.NoError(t, err)

	var st encodedState
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	ref, err := serialize.DecodeGraph(st.Reference)
	require.NoError(t, err)
	assert.Equal(t, 3, ref.EdgeCount())

	tbl, err := serialize.DecodeTable(st.Mappings[adv2Name])
	require.NoError(t, err)
	assert.Equal(t, "23", tbl["0"], "the first maximal candidate wins")
}

func TestIntersect_Errors(t *testing.T) {
	dir, pattern := fixture(t)

	_, err := execute(t, "intersect", "--solver-dir", dir)
	assert.Error(t, err, "pattern is required")

	_, err = execute(t, "intersect", "--solver-dir", dir, "--pattern", pattern, "--advantage", "Advantage_system9.9")
	assert.Error(t, err)

	_, err = execute(t, "intersect", "--solver-dir", t.TempDir(), "--pattern", pattern)
	assert.Error(t, err)

	missing := filepath.Join(dir, "none.jsonl")
	_, err = execute(t, "intersect", "--solver-dir", dir, "--pattern", pattern, "--candidates", advName+"="+missing)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun(t *testing.T) {
	dir, pattern := fixture(t)
	out, err := execute(t, "run", "--solver-dir", dir, "--pattern", pattern,
		"--seed", "3", "--precision", "4", "--num-reads", "5", "--bins", "3", "--sweeps", "10")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "run "))
	assert.Contains(t, out, "stddev")
	assert.Contains(t, out, advName)
	assert.Contains(t, out, adv2Name)
	// one summary row per system reporting all five reads
	rows := 0
	for _, line := range strings.Split(out, "\n") {
		f := strings.Fields(line)
		if len(f) > 1 && (f[0] == advName || f[0] == adv2Name) {
			assert.Equal(t, "5", f[1])
			rows++
		}
	}
	assert.Equal(t, 2, rows)
}

func TestRun_Validation(t *testing.T) {
	dir, pattern := fixture(t)
	base := []string{"run", "--solver-dir", dir, "--pattern", pattern, "--num-reads", "2"}

	_, err := execute(t, append(base, "--precision", "3")...)
	assert.ErrorContains(t, err, "precision 3")

	_, err = execute(t, append(base, "--anneal-time", "5000")...)
	assert.ErrorIs(t, err, config.ErrAnnealTimeOutOfRange)

	_, err = execute(t, append(base, "--anneal-type", "Slow")...)
	assert.Error(t, err)
}
