package pslg

import "fmt"

// edge is the minimal edge record backing both PSLG and OrientedPSLG:
// an id, its ordered endpoints, and a mutable weight. graphStore hands
// out live pointers to these so OrientedPSLG.SetWeight/AddWeight can
// mutate a stored edge in place.
type edge struct {
	ID     string
	From   string
	To     string
	Weight int64
}

// graphStore is a small adjacency-map vertex/edge store purpose-built
// for what PSLG and OrientedPSLG actually need: vertex membership,
// edge lookup by ordered endpoint pair, and a flat edge list. Whether a
// graph behaves as directed or undirected is a decision the caller
// makes (PSLG.AddEdge checks both (a,b) and (b,a) before inserting;
// OrientedPSLG.AddEdge checks only (a,b)) — the store itself just
// records whatever ordered pairs it's given.
type graphStore struct {
	vertices map[string]struct{}
	edges    map[string]*edge
	index    map[[2]string]*edge
	seq      int
}

func newGraphStore() *graphStore {
	return &graphStore{
		vertices: make(map[string]struct{}),
		edges:    make(map[string]*edge),
		index:    make(map[[2]string]*edge),
	}
}

// AddVertex inserts id into the vertex set. Idempotent.
func (s *graphStore) AddVertex(id string) error {
	s.vertices[id] = struct{}{}
	return nil
}

// HasVertex reports whether id is in the vertex set.
func (s *graphStore) HasVertex(id string) bool {
	_, ok := s.vertices[id]
	return ok
}

// RemoveVertex deletes id and every edge naming it as an endpoint.
func (s *graphStore) RemoveVertex(id string) error {
	if !s.HasVertex(id) {
		return fmt.Errorf("pslg: vertex %q not found", id)
	}
	delete(s.vertices, id)
	for key, e := range s.index {
		if e.From == id || e.To == id {
			delete(s.index, key)
			delete(s.edges, e.ID)
		}
	}
	return nil
}

// HasEdge reports whether the ordered pair (from, to) was inserted.
func (s *graphStore) HasEdge(from, to string) bool {
	_, ok := s.index[[2]string{from, to}]
	return ok
}

// AddEdge records an edge from -> to with the given weight and returns
// its generated id. Both endpoints must already be vertices.
func (s *graphStore) AddEdge(from, to string, weight int64) (string, error) {
	if !s.HasVertex(from) || !s.HasVertex(to) {
		return "", fmt.Errorf("pslg: edge endpoint not found")
	}
	s.seq++
	id := fmt.Sprintf("e%d", s.seq)
	e := &edge{ID: id, From: from, To: to, Weight: weight}
	s.edges[id] = e
	s.index[[2]string{from, to}] = e
	return id, nil
}

// Edges returns every stored edge, as live pointers.
func (s *graphStore) Edges() []*edge {
	out := make([]*edge, 0, len(s.edges))
	for _, e := range s.edges {
		out = append(out, e)
	}
	return out
}
