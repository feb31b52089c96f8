package regularize_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/pslg"
	"github.com/vkatalov/planargears/regularize"
)

// preparataShamos builds the canonical 13-node, 16-edge graph from
// Preparata & Shamos's "Computational Geometry: An Introduction",
// used throughout this module's tests as the end-to-end scenario.
func preparataShamos(t *testing.T) (*pslg.PSLG, []geom.Point) {
	t.Helper()
	coords := [][2]float64{
		{1, 1}, {7, 1}, {16, 1}, {4, 2}, {13, 3}, {5, 4}, {4, 6},
		{18, 7}, {15, 8}, {10, 9}, {1, 10}, {14, 11}, {7, 12},
	}
	nodes := make([]geom.Point, len(coords))
	for i, c := range coords {
		nodes[i] = geom.NewPoint(c[0], c[1])
	}

	type edgeSpec struct {
		a, b int
		name string
	}
	specs := []edgeSpec{
		{0, 1, "e1"}, {1, 4, "e2"}, {2, 4, "e3"}, {5, 6, "e4"},
		{2, 7, "e5"}, {3, 8, "e6"}, {1, 8, "e7"}, {5, 9, "e8"},
		{8, 9, "e9"}, {0, 10, "e10"}, {3, 10, "e11"}, {6, 10, "e12"},
		{8, 11, "e13"}, {7, 11, "e14"}, {6, 12, "e15"}, {11, 12, "e16"},
	}

	g := pslg.NewPSLG()
	for _, n := range nodes {
		require.NoError(t, g.AddNode(n))
	}
	for _, s := range specs {
		require.NoError(t, g.AddEdge(nodes[s.a], nodes[s.b], 0, s.name))
	}
	return g, nodes
}

func TestRegularizePreparataShamos(t *testing.T) {
	g, nodes := preparataShamos(t)

	oriented, err := pslg.FromPSLG(g)
	require.NoError(t, err)

	added, err := regularize.Regularize(oriented)
	require.NoError(t, err)
	require.Len(t, added, 6)

	want := []pslg.OrientedEdge{
		{First: nodes[1], Second: nodes[2]},
		{First: nodes[1], Second: nodes[3]},
		{First: nodes[3], Second: nodes[5]},
		{First: nodes[10], Second: nodes[12]},
		{First: nodes[9], Second: nodes[11]},
		{First: nodes[4], Second: nodes[7]},
	}
	for i, w := range want {
		require.True(t, added[i].Equal(w), "edge %d: got %s want %s", i, added[i], w)
	}

	regular, err := oriented.IsRegular()
	require.NoError(t, err)
	require.True(t, regular)
}

func TestRegularizeEmptyGraphIsNoop(t *testing.T) {
	g := pslg.NewOrientedPSLG()
	added, err := regularize.Regularize(g)
	require.NoError(t, err)
	require.Empty(t, added)
}
