package locate

import (
	"github.com/vkatalov/planargears/pslg"
	"github.com/vkatalov/planargears/tree"
)

// Chain is a single monotone chain: an ordered run of oriented edges
// from the graph's (y, x)-minimum node to its maximum.
type Chain = []pslg.OrientedEdge

// chainLess orders two chains by the coordinate-tuple order (Point.Less)
// of their first edge's lower endpoint. BuildTree constructs the search tree by recursive
// midpoint over an already left-to-right ordered chain list (spec.md
// §4.F), so this comparator is never consulted during a Query; it
// exists only to satisfy tree.Tree's construction contract, the same
// way the teacher's own comparator-taking containers do.
func chainLess(a, b interface{}) bool {
	ca, cb := a.(Chain), b.(Chain)
	if len(ca) == 0 || len(cb) == 0 {
		return false
	}
	return ca[0].First.Less(cb[0].First)
}

// BuildTree constructs the chains search tree: a threaded AVL built by
// recursive midpoint over chains, threaded non-circularly so a query
// never walks off the leftmost/rightmost leaf's wraparound link.
func BuildTree(chains []Chain) *tree.Tree {
	data := make([]interface{}, len(chains))
	for i, c := range chains {
		data[i] = c
	}
	t := tree.FromSorted(data, chainLess)
	t.Thread(false)
	return t
}
