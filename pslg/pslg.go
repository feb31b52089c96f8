package pslg

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/planarerr"
)

// PSLG is an undirected planar straight-line graph: a set of Points and
// a set of Edges, where adding an edge implicitly adds its endpoints
// and adding an edge whose reverse is already present is a no-op.
type PSLG struct {
	mu     sync.RWMutex
	g      *graphStore
	points map[string]geom.Point
	names  map[string]string // store edge ID -> name
}

// NewPSLG returns an empty undirected PSLG.
func NewPSLG() *PSLG {
	return &PSLG{
		g:      newGraphStore(),
		points: make(map[string]geom.Point),
		names:  make(map[string]string),
	}
}

// AddNode inserts p into the node set. It is idempotent.
func (p *PSLG) AddNode(v geom.Point) error {
	if v.Dim() != 2 {
		return planarerr.NewValidationFailure("PSLG.AddNode", fmt.Sprintf("point %s is not 2D", v))
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	id := v.ID()
	p.points[id] = v
	return p.g.AddVertex(id)
}

// AddEdge inserts an Edge{First: a, Second: b, Weight: w, Name: name}.
// Both endpoints are auto-inserted. If the reverse pair is already
// present, this is a no-op (spec.md §3).
func (p *PSLG) AddEdge(a, b geom.Point, weight int64, name string) error {
	if a.Dim() != 2 || b.Dim() != 2 {
		return planarerr.NewValidationFailure("PSLG.AddEdge", "endpoints must be 2D points")
	}
	idA, idB := a.ID(), b.ID()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.points[idA] = a
	p.points[idB] = b
	if err := p.g.AddVertex(idA); err != nil {
		return err
	}
	if err := p.g.AddVertex(idB); err != nil {
		return err
	}

	if p.g.HasEdge(idA, idB) || p.g.HasEdge(idB, idA) {
		return nil // reverse (or same) pair already present: no-op
	}
	eid, err := p.g.AddEdge(idA, idB, weight)
	if err != nil {
		return err
	}
	if name != "" {
		p.names[eid] = name
	}
	return nil
}

// HasNode reports whether v is in the node set.
func (p *PSLG) HasNode(v geom.Point) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.g.HasVertex(v.ID())
}

// HasEdge reports whether an edge exists between a and b, in either
// direction.
func (p *PSLG) HasEdge(a, b geom.Point) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	idA, idB := a.ID(), b.ID()
	return p.g.HasEdge(idA, idB) || p.g.HasEdge(idB, idA)
}

// RemoveNode deletes v and cascades to every incident edge.
func (p *PSLG) RemoveNode(v geom.Point) error {
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
func (p *PSLG) Nodes() []geom.Point {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]geom.Point, 0, len(p.points))
	for _, v := range p.points {
		out = append(out, v)
	}
	return out
}

// NodesSortedByYX returns every node, ascending by (y, x).
func (p *PSLG) NodesSortedByYX() []geom.Point {
	nodes := p.Nodes()
	sort.Slice(nodes, func(i, j int) bool { return geom.ByYX(nodes[i], nodes[j]) })
	return nodes
}

// edgeFor converts a stored edge into a domain Edge anchored with
// First=node-at-id-side, Second=other endpoint.
func (p *PSLG) edgeFor(ce *edge) Edge {
	name := p.names[ce.ID]
	return Edge{First: p.points[ce.From], Second: p.points[ce.To], Weight: ce.Weight, Name: name}
}

// EdgesOf returns every edge incident to v, matching the original
// implementation's linear scan over the full edge set (edges_of in
// AlgoGEARS core.py) rather than a directed-only adjacency shortcut.
func (p *PSLG) EdgesOf(v geom.Point) ([]Edge, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.g.HasVertex(v.ID()) {
		return nil, planarerr.NewValidationFailure("PSLG.EdgesOf", fmt.Sprintf("node %s not found", v))
	}
	var out []Edge
	for _, ce := range p.g.Edges() {
		if ce.From == v.ID() || ce.To == v.ID() {
			out = append(out, p.edgeFor(ce))
		}
	}
	return out, nil
}

// upperLowerEndpoints returns (lower, upper) of e by (y, x) order.
func upperLowerEndpoints(e Edge) (lower, upper geom.Point) {
	if geom.ByYX(e.First, e.Second) {
		return e.First, e.Second
	}
	return e.Second, e.First
}

// InwardEdges returns edges incident to v where v is the upper endpoint
// by (y, x) order, polar-angle sorted ascending and non-negative, per
// spec.md §3. The chain pipeline does not call it: FromPSLG orients
// edges through upperLowerEndpoints directly, and OrientedPSLG has its
// own InwardEdges/OutwardEdges.
func (p *PSLG) InwardEdges(v geom.Point) ([]Edge, error) {
	edges, err := p.EdgesOf(v)
	if err != nil {
		return nil, err
	}
	var inward []Edge
	for _, e := range edges {
		_, upper := upperLowerEndpoints(e)
		if upper.Equal(v) {
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

// OutwardEdges returns edges incident to v where v is the lower
// endpoint by (y, x) order, sorted by descending (signed) polar angle.
func (p *PSLG) OutwardEdges(v geom.Point) ([]Edge, error) {
	edges, err := p.EdgesOf(v)
	if err != nil {
		return nil, err
	}
	var outward []Edge
	for _, e := range edges {
		lower, _ := upperLowerEndpoints(e)
		if lower.Equal(v) {
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

// Edges returns every edge in the PSLG, each appearing once.
func (p *PSLG) Edges() []Edge {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ces := p.g.Edges()
	out := make([]Edge, 0, len(ces))
	for _, ce := range ces {
		out = append(out, p.edgeFor(ce))
	}
	return out
}

// Clone returns a deep copy: later mutation of either graph never
// aliases the other. This is the primitive the pipeline's snapshot
// contract (spec.md §5) is built on.
func (p *PSLG) Clone() *PSLG {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := NewPSLG()
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
