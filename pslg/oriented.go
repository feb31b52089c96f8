package pslg

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/planarerr"
)

// OrientedPSLG is a directed planar straight-line graph in which every
// edge is expected (but not enforced at insertion time) to run from its
// (y, x)-lexicographically lower endpoint to its higher one. FromPSLG
// builds one that satisfies this upward-orientation invariant; AddEdge
// itself accepts any direction the caller supplies.
type OrientedPSLG struct {
	mu     sync.RWMutex
	g      *graphStore
	points map[string]geom.Point
	names  map[string]string
}

// NewOrientedPSLG returns an empty OrientedPSLG.
func NewOrientedPSLG() *OrientedPSLG {
	return &OrientedPSLG{
		g:      newGraphStore(),
		points: make(map[string]geom.Point),
		names:  make(map[string]string),
	}
}

// AddNode inserts v into the node set. It is idempotent.
func (p *OrientedPSLG) AddNode(v geom.Point) error {
	if v.Dim() != 2 {
		return planarerr.NewValidationFailure("OrientedPSLG.AddNode", fmt.Sprintf("point %s is not 2D", v))
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	id := v.ID()
	p.points[id] = v
	return p.g.AddVertex(id)
}

// AddEdge inserts a directed edge from -> to. If the exact same
// direction already exists, this is a no-op; the reverse direction (to
// -> from) is a distinct edge and may coexist, matching OrientedEdge's
// ordered equality (spec.md §3).
func (p *OrientedPSLG) AddEdge(from, to geom.Point, weight int64, name string) error {
	if from.Dim() != 2 || to.Dim() != 2 {
		return planarerr.NewValidationFailure("OrientedPSLG.AddEdge", "endpoints must be 2D points")
	}
	idFrom, idTo := from.ID(), to.ID()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.points[idFrom] = from
	p.points[idTo] = to

	if p.g.HasEdge(idFrom, idTo) {
		return nil
	}
	eid, err := p.g.AddEdge(idFrom, idTo, weight)
	if err != nil {
		return err
	}
	if name != "" {
		p.names[eid] = name
	}
	return nil
}

// HasNode reports whether v is in the node set.
func (p *OrientedPSLG) HasNode(v geom.Point) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.g.HasVertex(v.ID())
}

// HasEdge reports whether a directed edge from -> to exists.
func (p *OrientedPSLG) HasEdge(from, to geom.Point) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.g.HasEdge(from.ID(), to.ID())
}

// RemoveNode deletes v and cascades to every incident edge.
func (p *OrientedPSLG) RemoveNode(v geom.Point) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := v.ID()
	if err := p.g.RemoveVertex(id); err != nil {
		return err
	}
	delete(p.points, id)
	return nil
}

// Nodes returns the current node set in no particular order.
func (p *OrientedPSLG) Nodes() []geom.Point {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]geom.Point, 0, len(p.points))
	for _, v := range p.points {
		out = append(out, v)
	}
	return out
}

// NodesSortedByYX returns every node, ascending by (y, x).
func (p *OrientedPSLG) NodesSortedByYX() []geom.Point {
	nodes := p.Nodes()
	sort.Slice(nodes, func(i, j int) bool { return geom.ByYX(nodes[i], nodes[j]) })
	return nodes
}

func (p *OrientedPSLG) edgeFor(ce *edge) OrientedEdge {
	return OrientedEdge{First: p.points[ce.From], Second: p.points[ce.To], Weight: ce.Weight, Name: p.names[ce.ID]}
}

// EdgesOf returns every edge with v as either endpoint. It scans the
// full edge set rather than a source-only adjacency shortcut, which on
// a directed graph would silently drop v's inward edges. This mirrors
// the original implementation's own linear edges_of scan.
func (p *OrientedPSLG) EdgesOf(v geom.Point) ([]OrientedEdge, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.g.HasVertex(v.ID()) {
		return nil, planarerr.NewValidationFailure("OrientedPSLG.EdgesOf", fmt.Sprintf("node %s not found", v))
	}
	var out []OrientedEdge
	for _, ce := range p.g.Edges() {
		if ce.From == v.ID() || ce.To == v.ID() {
			out = append(out, p.edgeFor(ce))
		}
	}
	return out, nil
}

// InwardEdges returns the edges directed into v (v is Second), sorted
// ascending by the non-negative polar angle of the other endpoint about
// v, per spec.md §3/§4.B.
func (p *OrientedPSLG) InwardEdges(v geom.Point) ([]OrientedEdge, error) {
	edges, err := p.EdgesOf(v)
	if err != nil {
		return nil, err
	}
	var inward []OrientedEdge
	for _, e := range edges {
		if e.Second.Equal(v) {
			inward = append(inward, e)
		}
	}
	sort.Slice(inward, func(i, j int) bool {
		oi, _ := inward[i].OtherNode(v)
		oj, _ := inward[j].OtherNode(v)
		return geom.NonnegPolarAngle(oi, v) < geom.NonnegPolarAngle(oj, v)
	})
	return inward, nil
}

// OutwardEdges returns the edges directed out of v (v is First), sorted
// descending by (signed) polar angle of the other endpoint about v.
func (p *OrientedPSLG) OutwardEdges(v geom.Point) ([]OrientedEdge, error) {
	edges, err := p.EdgesOf(v)
	if err != nil {
		return nil, err
	}
	var outward []OrientedEdge
	for _, e := range edges {
		if e.First.Equal(v) {
			outward = append(outward, e)
		}
	}
	sort.Slice(outward, func(i, j int) bool {
		oi, _ := outward[i].OtherNode(v)
		oj, _ := outward[j].OtherNode(v)
		return geom.PolarAngle(oi, v) > geom.PolarAngle(oj, v)
	})
	return outward, nil
}

// IsRegular reports whether every node other than the global (y, x)
// minimum has at least one inward edge, and every node other than the
// global (y, x) maximum has at least one outward edge (spec.md §4.B).
// An empty graph is vacuously regular.
func (p *OrientedPSLG) IsRegular() (bool, error) {
	nodes := p.NodesSortedByYX()
	if len(nodes) == 0 {
		return true, nil
	}
	min, max := nodes[0], nodes[len(nodes)-1]
	for _, v := range nodes {
		if !v.Equal(min) {
			in, err := p.InwardEdges(v)
			if err != nil {
				return false, err
			}
			if len(in) == 0 {
				return false, nil
			}
		}
		if !v.Equal(max) {
			out, err := p.OutwardEdges(v)
			if err != nil {
				return false, err
			}
			if len(out) == 0 {
				return false, nil
			}
		}
	}
	return true, nil
}

// TopologicalOrder returns p's nodes in a topological order of the
// directed edge set, an ambient diagnostic computed by Kahn's
// algorithm (repeatedly peeling off zero-indegree nodes). A regular
// oriented PSLG (every edge running from its lower endpoint to its
// higher one) is acyclic by construction, so this always succeeds on a
// graph IsRegular has already accepted; it errors if the edge set
// somehow contains a cycle.
func (p *OrientedPSLG) TopologicalOrder() ([]geom.Point, error) {
	p.mu.RLock()
	ids := make([]string, 0, len(p.points))
	for id := range p.points {
		ids = append(ids, id)
	}
	indeg := make(map[string]int, len(ids))
	adj := make(map[string][]string, len(ids))
	for _, id := range ids {
		indeg[id] = 0
	}
	for _, e := range p.g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		indeg[e.To]++
	}
	pts := p.points
	p.mu.RUnlock()

	queue := make([]string, 0, len(ids))
	for _, id := range ids {
		if indeg[id] == 0 {
			queue = append(queue, id)
		}
	}
	order := make([]string, 0, len(ids))
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		for _, v := range adj[u] {
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}
	if len(order) != len(ids) {
		return nil, planarerr.NewDomainFailure("OrientedPSLG.TopologicalOrder", "directed edge set contains a cycle")
	}

	out := make([]geom.Point, len(order))
	for i, id := range order {
		out[i] = pts[id]
	}
	return out, nil
}

// SetWeight overwrites the weight of the directed edge from -> to.
func (p *OrientedPSLG) SetWeight(from, to geom.Point, weight int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	idFrom, idTo := from.ID(), to.ID()
	for _, ce := range p.g.Edges() {
		if ce.From == idFrom && ce.To == idTo {
			ce.Weight = weight
			return nil
		}
	}
	return planarerr.NewValidationFailure("OrientedPSLG.SetWeight", fmt.Sprintf("no edge %s -> %s", from, to))
}

// AddWeight adds delta to the weight of the directed edge from -> to.
func (p *OrientedPSLG) AddWeight(from, to geom.Point, delta int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	idFrom, idTo := from.ID(), to.ID()
	for _, ce := range p.g.Edges() {
		if ce.From == idFrom && ce.To == idTo {
			ce.Weight += delta
			return nil
		}
	}
	return planarerr.NewValidationFailure("OrientedPSLG.AddWeight", fmt.Sprintf("no edge %s -> %s", from, to))
}

// SetAllWeights overwrites the weight of every edge to w, e.g. to seed
// the unit-weight graph chainweight.AssignUnitWeights builds on.
func (p *OrientedPSLG) SetAllWeights(w int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, ce := range p.g.Edges() {
		ce.Weight = w
	}
}

// Edges returns every edge in the OrientedPSLG.
func (p *OrientedPSLG) Edges() []OrientedEdge {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ces := p.g.Edges()
	out := make([]OrientedEdge, 0, len(ces))
	for _, ce := range ces {
		out = append(out, p.edgeFor(ce))
	}
	return out
}

// Clone returns a deep copy of p.
func (p *OrientedPSLG) Clone() *OrientedPSLG {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := NewOrientedPSLG()
	for id, v := range p.points {
		out.points[id] = v
		_ = out.g.AddVertex(id)
	}
	for _, ce := range p.g.Edges() {
		eid, _ := out.g.AddEdge(ce.From, ce.To, ce.Weight)
		if name, ok := p.names[ce.ID]; ok {
			out.names[eid] = name
		}
	}
	return out
}

// FromPSLG builds the upward orientation of p: every undirected edge is
// directed from its (y, x)-lexicographically lower endpoint to its
// higher one, with weight preserved. This is the construction AlgoGEARS
// calls OrientedPlanarStraightLineGraph.from_planar_straight_line_graph.
func FromPSLG(p *PSLG) (*OrientedPSLG, error) {
	out := NewOrientedPSLG()
	for _, v := range p.Nodes() {
		if err := out.AddNode(v); err != nil {
			return nil, err
		}
	}
	for _, e := range p.Edges() {
		lower, upper := upperLowerEndpoints(e)
		if err := out.AddEdge(lower, upper, e.Weight, e.Name); err != nil {
			return nil, err
		}
	}
	return out, nil
}
