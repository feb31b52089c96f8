package chainweight

import (
	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/pslg"
)

// LeftmostAvailableOutward returns the first element of node's
// polar-sorted outward list with weight > 0, or false if none remain.
func LeftmostAvailableOutward(g *pslg.OrientedPSLG, node geom.Point) (pslg.OrientedEdge, bool, error) {
	outward, err := g.OutwardEdges(node)
	if err != nil {
		return pslg.OrientedEdge{}, false, err
	}
	for _, e := range outward {
		if e.Weight > 0 {
			return e, true, nil
		}
	}
	return pslg.OrientedEdge{}, false, nil
}

// ExtractChains peels monotone chains off g from its (y, x)-minimum node
// to its maximum, per spec.md §4.E: repeatedly take the leftmost
// available outward edge from the minimum, follow leftmost-available
// outward edges node by node (decrementing each edge's weight as it is
// consumed) until the maximum is reached, then decrement the starting
// edge's weight. Chains are produced in left-to-right order; every
// edge's weight reaches zero by the time extraction stops.
func ExtractChains(g *pslg.OrientedPSLG, nodes []geom.Point) ([][]pslg.OrientedEdge, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	min, max := nodes[0], nodes[len(nodes)-1]

	var chains [][]pslg.OrientedEdge
	for {
		start, ok, err := LeftmostAvailableOutward(g, min)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		chain := []pslg.OrientedEdge{start}
		node := start.Second
		for !node.Equal(max) {
			e, ok, err := LeftmostAvailableOutward(g, node)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, errNoAvailableOutward(node)
			}
			chain = append(chain, e)
			if err := g.AddWeight(e.First, e.Second, -1); err != nil {
				return nil, err
			}
			node = e.Second
		}

		if err := g.AddWeight(start.First, start.Second, -1); err != nil {
			return nil, err
		}
		chains = append(chains, chain)
	}
	return chains, nil
}
