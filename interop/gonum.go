package interop

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/pslg"
)

// ToGonum builds a gonum simple.WeightedDirectedGraph with one node per
// node of g and one weighted edge per directed edge of g. Node IDs are
// assigned in g.NodesSortedByYX order, so node 0 is always the global
// (y, x) minimum and the last node is always the global maximum.
//
// The returned PointOf function recovers the originating geom.Point for
// a gonum node ID, since a gonum graph.Node only carries an int64.
func ToGonum(g *pslg.OrientedPSLG) (dg *simple.WeightedDirectedGraph, pointOf func(id int64) (geom.Point, bool)) {
	nodes := g.NodesSortedByYX()
	ids := make(map[string]int64, len(nodes))
	for i, n := range nodes {
		ids[n.ID()] = int64(i)
	}

	dg = simple.NewWeightedDirectedGraph(0, 0)
	for i := range nodes {
		dg.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges() {
		dg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(ids[e.First.ID()]),
			T: simple.Node(ids[e.Second.ID()]),
			W: float64(e.Weight),
		})
	}

	pointOf = func(id int64) (geom.Point, bool) {
		if id < 0 || int(id) >= len(nodes) {
			return geom.Point{}, false
		}
		return nodes[id], true
	}
	return dg, pointOf
}
