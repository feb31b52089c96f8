package pslg

import (
	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/planarerr"
)

// undirectedAdjacency builds a plain adjacency list over es, treating
// every edge as bidirectional regardless of how it is stored — the
// shape Validate's reachability check and the weighted-neighbor
// helpers below need.
func undirectedAdjacency(es []*edge) map[string][]string {
	adj := make(map[string][]string, len(es))
	for _, e := range es {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}
	return adj
}

// weightedNeighbors builds a symmetric weighted adjacency map over es,
// the shape the local Dijkstra and Prim helpers below consume.
func weightedNeighbors(es []*edge) map[string]map[string]int64 {
	adj := make(map[string]map[string]int64, len(es))
	add := func(from, to string, w int64) {
		if adj[from] == nil {
			adj[from] = make(map[string]int64)
		}
		adj[from][to] = w
	}
	for _, e := range es {
		add(e.From, e.To, e.Weight)
		add(e.To, e.From, e.Weight)
	}
	return adj
}

// bfsReachable returns the set of nodes reachable from start in adj,
// including start itself.
func bfsReachable(adj map[string][]string, start string) map[string]bool {
	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}
	return visited
}

// dijkstra runs a plain O(V^2) Dijkstra from source over adj — these
// subdivisions are at most a few dozen nodes, so there is no point
// reaching for a heap-based priority queue. It returns the shortest
// distance to every reachable node and the predecessor on that
// shortest path, for path reconstruction.
func dijkstra(adj map[string]map[string]int64, source string) (dist map[string]int64, prev map[string]string) {
	dist = map[string]int64{source: 0}
	prev = make(map[string]string)
	visited := make(map[string]bool)
	for {
		u, best, found := "", int64(0), false
		for id, d := range dist {
			if visited[id] {
				continue
			}
			if !found || d < best {
				u, best, found = id, d, true
			}
		}
		if !found {
			break
		}
		visited[u] = true
		for v, w := range adj[u] {
			nd := best + w
			if d, ok := dist[v]; !ok || nd < d {
				dist[v] = nd
				prev[v] = u
			}
		}
	}
	return dist, prev
}

// primMST grows a minimum spanning tree from root over adj and returns
// its total weight. Node selection is a plain linear scan rather than a
// heap, for the same reason dijkstra above is O(V^2): these graphs are
// small and the diagnostic is run once per call, not in a hot loop.
func primMST(adj map[string]map[string]int64, root string) float64 {
	inTree := map[string]bool{root: true}
	var total float64
	for {
		bestTo, bestWeight, found := "", int64(0), false
		for u := range inTree {
			for v, w := range adj[u] {
				if inTree[v] {
					continue
				}
				if !found || w < bestWeight {
					bestTo, bestWeight, found = v, w, true
				}
			}
		}
		if !found {
			break
		}
		inTree[bestTo] = true
		total += float64(bestWeight)
	}
	return total
}

// Validate checks that p is connected, the structural precondition the
// chain method imposes on its input PSLG (spec.md §2), via a plain BFS
// reachability walk from an arbitrary node.
func (p *PSLG) Validate() error {
	p.mu.RLock()
	nodes := make([]string, 0, len(p.points))
	for id := range p.points {
		nodes = append(nodes, id)
	}
	adj := undirectedAdjacency(p.g.Edges())
	p.mu.RUnlock()

	if len(nodes) == 0 {
		return planarerr.NewValidationFailure("PSLG.Validate", "graph has no nodes")
	}
	reached := bfsReachable(adj, nodes[0])
	if len(reached) != len(nodes) {
		return planarerr.NewValidationFailure("PSLG.Validate", "graph is not connected")
	}
	return nil
}

// ShortestRoute returns the minimum-weight path from a to b, an ambient
// diagnostic computed by a small local Dijkstra (not part of the chain
// pipeline itself).
func (p *PSLG) ShortestRoute(a, b geom.Point) ([]geom.Point, int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	idA, idB := a.ID(), b.ID()
	if !p.g.HasVertex(idA) || !p.g.HasVertex(idB) {
		return nil, 0, planarerr.NewValidationFailure("PSLG.ShortestRoute", "both endpoints must be present")
	}

	dist, prev := dijkstra(weightedNeighbors(p.g.Edges()), idA)
	d, ok := dist[idB]
	if !ok {
		return nil, 0, planarerr.NewDomainFailure("PSLG.ShortestRoute", "destination unreachable")
	}
	var path []string
	for cur := idB; ; cur = prev[cur] {
		path = append([]string{cur}, path...)
		if cur == idA {
			break
		}
	}
	out := make([]geom.Point, len(path))
	for i, id := range path {
		out[i] = p.points[id]
	}
	return out, d, nil
}

// SkeletonWeight returns the total weight of a minimum spanning tree of
// p, an ambient diagnostic computed by a small local Prim's algorithm.
// root selects the vertex Prim grows from; any connected node works for
// the returned weight.
func (p *PSLG) SkeletonWeight(root geom.Point) (float64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	id := root.ID()
	if !p.g.HasVertex(id) {
		return 0, planarerr.NewValidationFailure("PSLG.SkeletonWeight", "root not present")
	}
	return primMST(weightedNeighbors(p.g.Edges()), id), nil
}
