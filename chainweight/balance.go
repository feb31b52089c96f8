package chainweight

import (
	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/pslg"
)

// AssignUnitWeights sets every edge of g to weight 1, the starting point
// for balancing (spec.md §4.E).
func AssignUnitWeights(g *pslg.OrientedPSLG) {
	g.SetAllWeights(1)
}

// sumWeights totals the Weight field over edges.
func sumWeights(edges []pslg.OrientedEdge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}
	return total
}

// BalanceBottomUp visits g's nodes in ascending (y, x) order. At each
// node with outward edges whose inward weight sum exceeds its outward
// weight sum, the deficit is added to outward[0] - the first element of
// the polar-sorted outward list (the most-negative-polar-angle, i.e.
// "rightmost", outward edge).
func BalanceBottomUp(g *pslg.OrientedPSLG, nodes []geom.Point) error {
	for _, node := range nodes {
		inward, err := g.InwardEdges(node)
		if err != nil {
			return err
		}
		outward, err := g.OutwardEdges(node)
		if err != nil {
			return err
		}
		if len(outward) == 0 {
			continue
		}
		deficit := sumWeights(inward) - sumWeights(outward)
		if deficit > 0 {
			if err := g.AddWeight(outward[0].First, outward[0].Second, deficit); err != nil {
				return err
			}
		}
	}
	return nil
}

// BalanceTopDown visits g's nodes in descending (y, x) order. At each
// node with inward edges whose outward weight sum exceeds its inward
// weight sum, the deficit is added to inward[0] - the most-rightward
// inward edge.
func BalanceTopDown(g *pslg.OrientedPSLG, nodes []geom.Point) error {
	for i := len(nodes) - 1; i >= 0; i-- {
		node := nodes[i]
		inward, err := g.InwardEdges(node)
		if err != nil {
			return err
		}
		outward, err := g.OutwardEdges(node)
		if err != nil {
			return err
		}
		if len(inward) == 0 {
			continue
		}
		deficit := sumWeights(outward) - sumWeights(inward)
		if deficit > 0 {
			if err := g.AddWeight(inward[0].First, inward[0].Second, deficit); err != nil {
				return err
			}
		}
	}
	return nil
}
