package intersect

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/sublattice/bfs"
	"github.com/katalvlaran/sublattice/core"
)

// SystemReport summarizes one placement.
type SystemReport struct {
	System     string `json:"system"`
	Candidates int    `json:"candidates"`
	Yield      int    `json:"yield"`
	Merged     int    `json:"merged"`
	// LargestComponent is the size of the largest connected piece of the
	// pattern using only couplers present in this system's SubGraph; 0 when
	// nothing was placed.
	LargestComponent int `json:"largest_component"`
	// Qubits lists the hardware qubits used by the final intersection.
	Qubits []string `json:"qubits"`
}

// Report describes how much of the pattern survived composition.
type Report struct {
	PatternNodes int `json:"pattern_nodes"`
	PatternEdges int `json:"pattern_edges"`
	KeptNodes    int `json:"kept_nodes"`
	KeptEdges    int `json:"kept_edges"`

	// DroppedNodes lists pattern nodes left without any surviving edge, sorted.
	DroppedNodes []string `json:"dropped_nodes"`
	// DroppedEdges counts pattern edges lost on at least one system.
	DroppedEdges int `json:"dropped_edges"`

	// Components lists the sizes of the connected components of the final
	// reference, largest first.
	Components []int `json:"components"`
	// Diameter is the largest hop distance between connected qubits of the
	// final reference.
	Diameter int `json:"diameter"`

	// SharedQubits counts hardware labels used on every system. Distinct
	// processors use unrelated labelings, so this is mostly informative when
	// systems share a label space.
	SharedQubits int `json:"shared_qubits"`

	Systems []SystemReport `json:"systems"`
}

// EdgeRetention returns KeptEdges/PatternEdges, or 0 for an empty pattern.
func (r *Report) EdgeRetention() float64 {
	if r == nil || r.PatternEdges == 0 {
		return 0
	}

	return float64(r.KeptEdges) / float64(r.PatternEdges)
}

// BuildReport computes a Report for in and stores it on in.Report.
func BuildReport(in *Intersection) (*Report, error) {
	if in == nil || in.Pattern == nil || in.Reference == nil {
		return nil, ErrGraphNil
	}

	patternNodes := mapset.NewThreadUnsafeSet(in.Pattern.Vertices()...)
	keptNodes := mapset.NewThreadUnsafeSet(in.Reference.Vertices()...)
	dropped := patternNodes.Difference(keptNodes).ToSlice()
	sort.Strings(dropped)

	keptEdges := edgeKeys(in.Reference)
	droppedEdges := edgeKeys(in.Pattern).Difference(keptEdges).Cardinality()

	comps, err := bfs.Components(in.Reference)
	if err != nil {
		return nil, err
	}
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}

	diameter, err := bfs.Diameter(in.Reference)
	if err != nil {
		return nil, err
	}

	r := &Report{
		PatternNodes: patternNodes.Cardinality(),
		PatternEdges: in.Pattern.EdgeCount(),
		KeptNodes:    keptNodes.Cardinality(),
		KeptEdges:    in.Reference.EdgeCount(),
		DroppedNodes: dropped,
		DroppedEdges: droppedEdges,
		Components:   sizes,
		Diameter:     diameter,
		Systems:      make([]SystemReport, 0, len(in.Placements)),
	}

	var shared mapset.Set[string]
	for _, p := range in.Placements {
		qubits := []string{}
		if p.Final != nil {
			qubits = p.Final.Vertices()
		}
		largest, err := largestPlaced(in.Pattern, p)
		if err != nil {
			return nil, err
		}
		r.Systems = append(r.Systems, SystemReport{
			System:           p.System,
			Candidates:       p.Candidates,
			Yield:            p.Yield,
			Merged:           p.Merged,
			LargestComponent: largest,
			Qubits:           qubits,
		})
		used := mapset.NewThreadUnsafeSet(qubits...)
		if shared == nil {
			shared = used
		} else {
			shared = shared.Intersect(used)
		}
	}
	if shared != nil {
		r.SharedQubits = shared.Cardinality()
	}
	in.Report = r

	return r, nil
}

// largestPlaced walks pattern over the couplers whose images are edges of
// p.SubGraph and returns the largest component size.
func largestPlaced(pattern *core.Graph, p Placement) (int, error) {
	if !p.Found() || p.SubGraph == nil {
		return 0, nil
	}
	placed := func(u, v string) bool {
		mu, okU := p.Mapping.Map(u)
		mv, okV := p.Mapping.Map(v)
		return okU && okV && p.SubGraph.HasEdge(mu, mv)
	}
	comps, err := bfs.Components(pattern, bfs.WithCouplerFilter(placed))
	if err != nil || len(comps) == 0 {
		return 0, err
	}

	return len(comps[0]), nil
}

// edgeKeys returns the undirected edge set of g keyed by edge ID. Trimmed
// references keep their source edge IDs, so IDs identify pattern edges.
func edgeKeys(g *core.Graph) mapset.Set[string] {
	s := mapset.NewThreadUnsafeSet[string]()
	for _, e := range g.Edges() {
		s.Add(e.ID)
	}

	return s
}
