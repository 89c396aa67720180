package topology

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const propertiesExt = ".json"

// DirProvider reads solver-properties documents from Dir, one file per solver
// named <solver>.json. Parsed topologies are cached. Logger receives a warning
// for every file Solvers skips; nil means no logging.
type DirProvider struct {
	Dir    string
	Logger *zap.Logger

	mu    sync.Mutex
	cache map[string]*Topology
}

// NewDirProvider returns a provider over dir.
func NewDirProvider(dir string) *DirProvider {
	return &DirProvider{Dir: dir, Logger: zap.NewNop()}
}

// Topology implements Provider.
func (p *DirProvider) Topology(ctx context.Context, name string) (*Topology, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.cache[name]; ok {
		return t, nil
	}

	f, err := p.open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Decode(name, f)
	if err != nil {
		return nil, err
	}
	if p.cache == nil {
		p.cache = make(map[string]*Topology)
	}
	p.cache[name] = t

	return t, nil
}

// Solvers implements Catalog: every readable *.json file in Dir, sorted by
// name. Files that fail to decode are skipped.
func (p *DirProvider) Solvers(ctx context.Context) ([]Solver, error) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	entries, err := os.ReadDir(p.Dir)
	if err != nil {
		return nil, fmt.Errorf("topology: list %s: %w", p.Dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != propertiesExt {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), propertiesExt))
	}
	sort.Strings(names)

	out := make([]Solver, 0, len(names))
	for _, name := range names {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		s, err := p.solver(name)
		if err != nil {
			logger.Warn("skipping solver file", zap.String("solver", name), zap.Error(err))
			continue
		}
		out = append(out, s)
	}

	return out, nil
}

func (p *DirProvider) solver(name string) (Solver, error) {
	f, err := p.open(name)
	if err != nil {
		return Solver{}, err
	}
	defer f.Close()

	return DecodeSolver(name, f)
}

func (p *DirProvider) open(name string) (*os.File, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrSolverNotFound, name)
	}
	f, err := os.Open(filepath.Join(p.Dir, name+propertiesExt))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrSolverNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("topology: open %s: %w", name, err)
	}

	return f, nil
}

// Static serves in-memory topologies keyed by solver name.
type Static map[string]*Topology

// Topology implements Provider.
func (s Static) Topology(ctx context.Context, name string) (*Topology, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSolverNotFound, name)
	}

	return t, nil
}

// Solvers implements Catalog, sorted by name.
func (s Static) Solvers(ctx context.Context) ([]Solver, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Solver, 0, len(s))
	for _, t := range s {
		out = append(out, Solver{
			Name:                t.Name,
			Family:              t.Family,
			Lattice:             t.Lattice,
			AnnealingTimeRange:  t.AnnealingTimeRange,
			FastAnnealTimeRange: t.FastAnnealTimeRange,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}
