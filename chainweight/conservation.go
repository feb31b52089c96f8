package chainweight

import (
	"math"

	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/planarerr"
	"github.com/vkatalov/planargears/pslg"
)

// VerifyConservation cross-checks testable property 6 (the balanced
// graph admits a flow from its minimum to its maximum whose value
// equals the extracted chain count) and testable property 2 (∑inward =
// ∑outward at every internal node) by two independent routes: a small
// local max-flow computation and a direct row/column weight-sum
// comparison over the same balanced, pre-extraction weighted graph.
//
// balanced must be the graph as it stood right after BalanceTopDown,
// before ExtractChains has consumed any weight; chainCount is the
// number of chains ExtractChains subsequently produced from it.
func VerifyConservation(balanced *pslg.OrientedPSLG, chainCount int) error {
	nodes := balanced.NodesSortedByYX()
	if len(nodes) < 2 {
		return nil
	}
	min, max := nodes[0], nodes[len(nodes)-1]

	flowValue := maxFlow(balanced.Edges(), min.ID(), max.ID())
	if int(math.Round(flowValue)) != chainCount {
		return planarerr.NewDomainFailure("chainweight.VerifyConservation",
			"max-flow value does not equal the extracted chain count")
	}

	rowSum, colSum := make(map[string]int64), make(map[string]int64)
	for _, e := range balanced.Edges() {
		rowSum[e.First.ID()] += e.Weight
		colSum[e.Second.ID()] += e.Weight
	}
	for _, v := range nodes {
		if v.Equal(min) || v.Equal(max) {
			continue
		}
		if math.Abs(float64(rowSum[v.ID()]-colSum[v.ID()])) > geom.Tolerance {
			return planarerr.NewDomainFailure("chainweight.VerifyConservation",
				"row/column sum mismatch at an internal node")
		}
	}
	return nil
}

// maxFlow is a small Edmonds-Karp max-flow computation (BFS augmenting
// paths over an explicit residual-capacity map), purpose-built for this
// one cross-check rather than pulled from a general max-flow library:
// the balanced graphs here are at most a few dozen nodes, so a
// BFS-augmenting-path loop with no further optimization is plenty.
func maxFlow(edges []pslg.OrientedEdge, source, sink string) float64 {
	type pair struct{ u, v string }
	capacity := make(map[pair]int64, len(edges)*2)
	adj := make(map[string][]string, len(edges))
	for _, e := range edges {
		u, v := e.First.ID(), e.Second.ID()
		key := pair{u, v}
		if _, seen := capacity[key]; !seen {
			adj[u] = append(adj[u], v)
			adj[v] = append(adj[v], u) // residual back-edge, capacity starts at 0
		}
		capacity[key] += e.Weight
	}

	var total int64
	for {
		parent := map[string]string{source: source}
		queue := []string{source}
		for len(queue) > 0 && parent[sink] == "" {
			u := queue[0]
			queue = queue[1:]
			for _, v := range adj[u] {
				if parent[v] != "" || capacity[pair{u, v}] <= 0 {
					continue
				}
				parent[v] = u
				queue = append(queue, v)
			}
		}
		if parent[sink] == "" {
			break
		}

		bottleneck := int64(math.MaxInt64)
		for v := sink; v != source; {
			u := parent[v]
			if c := capacity[pair{u, v}]; c < bottleneck {
				bottleneck = c
			}
			v = u
		}
		for v := sink; v != source; {
			u := parent[v]
			capacity[pair{u, v}] -= bottleneck
			capacity[pair{v, u}] += bottleneck
			v = u
		}
		total += bottleneck
	}
	return float64(total)
}
