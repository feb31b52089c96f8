package planargears

import (
	"github.com/vkatalov/planargears/chainweight"
	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/locate"
	"github.com/vkatalov/planargears/pslg"
	"github.com/vkatalov/planargears/regularize"
	"github.com/vkatalov/planargears/tree"
)

// Chain is the library's entry point: given a connected PSLG and a
// query point, it returns the lazy ten-step transcript of the
// Lee-Preparata chain method (spec.md §5), ending with the search path
// and bracketing chain pair for query. The spec's step 10 ("chains
// search tree, followed by (search path, bracketing chain pair)")
// is delivered as two Snapshot pulls (Tree, then Result), mirroring
// the original AlgoGEARS generator's own two trailing yields.
func Chain(subdivision *pslg.PSLG, query geom.Point) *SnapshotSeq {
	var (
		nodes     []geom.Point
		oriented  *pslg.OrientedPSLG
		chains    [][]pslg.OrientedEdge
		chainTree *tree.Tree
	)

	steps := []func() (Snapshot, error){
		// 1. nodes sorted bottom-to-top
		func() (Snapshot, error) {
			nodes = subdivision.NodesSortedByYX()
			return Snapshot{Kind: KindNodesSorted, NodesSorted: append([]geom.Point{}, nodes...)}, nil
		},
		// 2. oriented PSLG (copy)
		func() (Snapshot, error) {
			var err error
			oriented, err = pslg.FromPSLG(subdivision)
			if err != nil {
				return Snapshot{}, err
			}
			return Snapshot{Kind: KindOrientedGraph, OrientedGraph: oriented.Clone()}, nil
		},
		// 3. inward-edge lists per node
		func() (Snapshot, error) {
			lists := make([][]pslg.OrientedEdge, len(nodes))
			for i, n := range nodes {
				in, err := oriented.InwardEdges(n)
				if err != nil {
					return Snapshot{}, err
				}
				lists[i] = in
			}
			return Snapshot{Kind: KindInwardEdgeLists, EdgeLists: cloneEdgeLists(lists)}, nil
		},
		// 4. outward-edge lists per node
		func() (Snapshot, error) {
			lists := make([][]pslg.OrientedEdge, len(nodes))
			for i, n := range nodes {
				out, err := oriented.OutwardEdges(n)
				if err != nil {
					return Snapshot{}, err
				}
				lists[i] = out
			}
			return Snapshot{Kind: KindOutwardEdgeLists, EdgeLists: cloneEdgeLists(lists)}, nil
		},
		// 5. regularized oriented PSLG (copy)
		func() (Snapshot, error) {
			regular, err := oriented.IsRegular()
			if err != nil {
				return Snapshot{}, err
			}
			if !regular {
				if _, err := regularize.Regularize(oriented); err != nil {
					return Snapshot{}, err
				}
			}
			return Snapshot{Kind: KindRegularizedGraph, OrientedGraph: oriented.Clone()}, nil
		},
		// 6. same with unit weights (copy)
		func() (Snapshot, error) {
			chainweight.AssignUnitWeights(oriented)
			return Snapshot{Kind: KindWeightedGraph, OrientedGraph: oriented.Clone()}, nil
		},
		// 7. after bottom-up balancing (copy)
		func() (Snapshot, error) {
			nodes = oriented.NodesSortedByYX()
			if err := chainweight.BalanceBottomUp(oriented, nodes); err != nil {
				return Snapshot{}, err
			}
			return Snapshot{Kind: KindBottomUpBalanced, OrientedGraph: oriented.Clone()}, nil
		},
		// 8. after top-down balancing (copy)
		func() (Snapshot, error) {
			if err := chainweight.BalanceTopDown(oriented, nodes); err != nil {
				return Snapshot{}, err
			}
			return Snapshot{Kind: KindTopDownBalanced, OrientedGraph: oriented.Clone()}, nil
		},
		// 9. extracted monotone chains
		func() (Snapshot, error) {
			var err error
			chains, err = chainweight.ExtractChains(oriented, nodes)
			if err != nil {
				return Snapshot{}, err
			}
			return Snapshot{Kind: KindChains, Chains: cloneEdgeLists(chains)}, nil
		},
		// 10a. chains search tree
		func() (Snapshot, error) {
			locateChains := make([]locate.Chain, len(chains))
			for i, c := range chains {
				locateChains[i] = c
			}
			chainTree = locate.BuildTree(locateChains)
			return Snapshot{Kind: KindTree, Tree: locate.BuildTree(cloneEdgeLists(locateChains))}, nil
		},
		// 10b. search path and bracketing chain pair
		func() (Snapshot, error) {
			path, bracket, err := locate.Query(chainTree, query)
			if err != nil {
				return Snapshot{}, err
			}
			return Snapshot{Kind: KindResult, Path: path, Bracket: bracket}, nil
		},
	}

	return newSnapshotSeq(steps)
}
