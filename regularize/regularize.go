package regularize

import (
	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/pslg"
)

// Regularize runs the bottom-up pass followed by the top-down pass
// over g, mutating it in place, and returns every regularizing edge
// added, bottom-up edges first, in the order they were added.
func Regularize(g *pslg.OrientedPSLG) ([]pslg.OrientedEdge, error) {
	up, err := BottomUp(g)
	if err != nil {
		return nil, err
	}
	down, err := TopDown(g)
	if err != nil {
		return nil, err
	}
	return append(up, down...), nil
}

// sweptIndexOf returns the index of the first edge in swept equal to
// target, or -1 if absent.
func sweptIndexOf(swept []pslg.OrientedEdge, target pslg.OrientedEdge) int {
	for i, e := range swept {
		if e.Equal(target) {
			return i
		}
	}
	return -1
}

// bracketIndex locates the position in swept where v's primary-edge
// run belongs, by the bracket test in spec.md §4.D: the first edge e
// with orient(e.First, e.Second, v) == LEFT, or (STRAIGHT and v before
// e.First in coordinate-tuple order); absent any such edge, the end of
// the list.
func bracketIndex(swept []pslg.OrientedEdge, v geom.Point) (int, error) {
	for i, e := range swept {
		turn, err := geom.Orient(e.First, e.Second, v)
		if err != nil {
			return 0, err
		}
		if turn == geom.Left || (turn == geom.Straight && v.Less(e.First)) {
			return i, nil
		}
	}
	return len(swept), nil
}

// insertionIndex returns the position in swept where node's primary
// (inward, for the bottom-up pass) edges already live — the index of
// primary[0] in swept — or, when node has none, the bracketIndex.
func insertionIndex(node geom.Point, swept []pslg.OrientedEdge, primary []pslg.OrientedEdge) (int, error) {
	if len(primary) > 0 {
		if idx := sweptIndexOf(swept, primary[0]); idx >= 0 {
			return idx, nil
		}
	}
	return bracketIndex(swept, node)
}

// spliceSwept deletes len(remove) edges at idx and inserts insert at
// the same index, mirroring the original's del-then-splice sequence.
func spliceSwept(swept []pslg.OrientedEdge, idx int, remove, insert []pslg.OrientedEdge) []pslg.OrientedEdge {
	tail := append([]pslg.OrientedEdge{}, swept[idx+len(remove):]...)
	out := append([]pslg.OrientedEdge{}, swept[:idx]...)
	out = append(out, insert...)
	out = append(out, tail...)
	return out
}

// BottomUp processes g's nodes in ascending (y, x) order, maintaining
// the active-edge list swept, and adds a regularizing inward edge to
// any non-first node found to have none, per spec.md §4.D.
func BottomUp(g *pslg.OrientedPSLG) ([]pslg.OrientedEdge, error) {
	nodes := g.NodesSortedByYX()
	var swept []pslg.OrientedEdge
	var added []pslg.OrientedEdge

	for i, node := range nodes {
		inward, err := g.InwardEdges(node)
		if err != nil {
			return nil, err
		}
		outward, err := g.OutwardEdges(node)
		if err != nil {
			return nil, err
		}

		idx, err := insertionIndex(node, swept, inward)
		if err != nil {
			return nil, err
		}

		if i != 0 && len(inward) == 0 {
			e, err := addRegularizingInwardEdge(g, node, swept, idx)
			if err != nil {
				return nil, err
			}
			added = append(added, e)
		}

		swept = spliceSwept(swept, idx, inward, outward)
	}
	return added, nil
}

// addRegularizingInwardEdge adds an edge from the uppermost lower
// endpoint among swept's immediate left/right neighbors at idx to
// node, and returns it.
func addRegularizingInwardEdge(g *pslg.OrientedPSLG, node geom.Point, swept []pslg.OrientedEdge, idx int) (pslg.OrientedEdge, error) {
	var left, right *pslg.OrientedEdge
	if idx != 0 {
		left = &swept[idx-1]
	}
	if idx != len(swept) {
		right = &swept[idx]
	}
	lower := uppermostLowerNode(left, right)
	if err := g.AddEdge(lower, node, 0, ""); err != nil {
		return pslg.OrientedEdge{}, err
	}
	return pslg.OrientedEdge{First: lower, Second: node}, nil
}

// uppermostLowerNode picks whichever edge's First endpoint is greater
// by (y, x) order, falling back to whichever edge is present.
func uppermostLowerNode(left, right *pslg.OrientedEdge) geom.Point {
	if left == nil {
		return right.First
	}
	if right == nil {
		return left.First
	}
	if geom.ByYX(left.First, right.First) {
		return right.First
	}
	return left.First
}

// TopDown processes g's nodes in descending (y, x) order, maintaining
// the active-edge list swept, and adds a regularizing outward edge to
// any non-first (in this order) node found to have none, per spec.md
// §4.D. It computes the insertion index before deleting node's
// outward edges from swept, exactly mirroring BottomUp's
// delete-then-insert-at-the-same-index sequence.
func TopDown(g *pslg.OrientedPSLG) ([]pslg.OrientedEdge, error) {
	nodes := g.NodesSortedByYX()
	var swept []pslg.OrientedEdge
	var added []pslg.OrientedEdge

	for i := len(nodes) - 1; i >= 0; i-- {
		node := nodes[i]
		inward, err := g.InwardEdges(node)
		if err != nil {
			return nil, err
		}
		outward, err := g.OutwardEdges(node)
		if err != nil {
			return nil, err
		}

		idx, err := insertionIndex(node, swept, outward)
		if err != nil {
			return nil, err
		}

		if i != len(nodes)-1 && len(outward) == 0 {
			e, err := addRegularizingOutwardEdge(g, node, swept, idx)
			if err != nil {
				return nil, err
			}
			added = append(added, e)
		}

		swept = spliceSwept(swept, idx, outward, inward)
	}
	return added, nil
}

// addRegularizingOutwardEdge adds an edge from node to the lowermost
// upper endpoint among swept's immediate left/right neighbors at idx,
// and returns it.
func addRegularizingOutwardEdge(g *pslg.OrientedPSLG, node geom.Point, swept []pslg.OrientedEdge, idx int) (pslg.OrientedEdge, error) {
	var left, right *pslg.OrientedEdge
	if idx != 0 {
		left = &swept[idx-1]
	}
	if idx != len(swept) {
		right = &swept[idx]
	}
	upper := lowermostUpperNode(left, right)
	if err := g.AddEdge(node, upper, 0, ""); err != nil {
		return pslg.OrientedEdge{}, err
	}
	return pslg.OrientedEdge{First: node, Second: upper}, nil
}

// lowermostUpperNode picks whichever edge's Second endpoint is
// smaller by (y, x) order, falling back to whichever edge is present.
func lowermostUpperNode(left, right *pslg.OrientedEdge) geom.Point {
	if left == nil {
		return right.Second
	}
	if right == nil {
		return left.Second
	}
	if geom.ByYX(left.Second, right.Second) {
		return left.Second
	}
	return right.Second
}
