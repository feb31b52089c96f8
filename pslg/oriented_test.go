package pslg_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/pslg"
)

func smallOriented(t *testing.T) (*pslg.OrientedPSLG, geom.Point, geom.Point, geom.Point) {
	t.Helper()
	a, b, c := geom.NewPoint(0, 0), geom.NewPoint(1, 1), geom.NewPoint(2, 2)
	g := pslg.NewOrientedPSLG()
	require.NoError(t, g.AddNode(a))
	require.NoError(t, g.AddNode(b))
	require.NoError(t, g.AddNode(c))
	require.NoError(t, g.AddEdge(a, b, 1, "ab"))
	require.NoError(t, g.AddEdge(b, c, 1, "bc"))
	return g, a, b, c
}

func TestOrientedAddEdgeSameDirectionIsNoop(t *testing.T) {
	g, a, b, _ := smallOriented(t)
	require.NoError(t, g.AddEdge(a, b, 99, "ab-dup"))
	require.Len(t, g.Edges(), 2)
	out, err := g.OutwardEdges(a)
	require.NoError(t, err)
	require.Equal(t, int64(1), out[0].Weight) // the duplicate insert did not overwrite weight
}

func TestOrientedInwardOutward(t *testing.T) {
	g, a, b, c := smallOriented(t)

	in, err := g.InwardEdges(b)
	require.NoError(t, err)
	require.Len(t, in, 1)
	require.True(t, in[0].First.Equal(a))

	out, err := g.OutwardEdges(b)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.True(t, out[0].Second.Equal(c))

	in, err = g.InwardEdges(a)
	require.NoError(t, err)
	require.Empty(t, in)
}

func TestOrientedIsRegular(t *testing.T) {
	g, _, _, _ := smallOriented(t)
	regular, err := g.IsRegular()
	require.NoError(t, err)
	require.True(t, regular)
}

func TestOrientedIsRegularEmptyGraph(t *testing.T) {
	g := pslg.NewOrientedPSLG()
	regular, err := g.IsRegular()
	require.NoError(t, err)
	require.True(t, regular)
}

func TestOrientedSetAndAddWeight(t *testing.T) {
	g, a, b, _ := smallOriented(t)
	require.NoError(t, g.SetWeight(a, b, 7))
	require.NoError(t, g.AddWeight(a, b, 3))
	out, err := g.OutwardEdges(a)
	require.NoError(t, err)
	require.Equal(t, int64(10), out[0].Weight)
}

func TestOrientedSetWeightRejectsUnknownEdge(t *testing.T) {
	g, a, _, c := smallOriented(t)
	require.Error(t, g.SetWeight(a, c, 1))
}

func TestOrientedClone(t *testing.T) {
	g, a, b, _ := smallOriented(t)
	clone := g.Clone()
	require.NoError(t, clone.SetWeight(a, b, 42))

	out, err := g.OutwardEdges(a)
	require.NoError(t, err)
	require.Equal(t, int64(1), out[0].Weight, "mutating the clone must not affect the original")
}

func TestOrientedTopologicalOrder(t *testing.T) {
	g, a, b, c := smallOriented(t)
	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	require.Len(t, order, 3)

	pos := make(map[string]int, 3)
	for i, p := range order {
		pos[p.ID()] = i
	}
	require.Less(t, pos[a.ID()], pos[b.ID()])
	require.Less(t, pos[b.ID()], pos[c.ID()])
}

func TestFromPSLGOrientsUpward(t *testing.T) {
	low, high := geom.NewPoint(0, 0), geom.NewPoint(1, 5)
	undirected := pslg.NewPSLG()
	require.NoError(t, undirected.AddNode(low))
	require.NoError(t, undirected.AddNode(high))
	// Insert in the "wrong" direction; FromPSLG must still orient upward.
	require.NoError(t, undirected.AddEdge(high, low, 0, ""))

	oriented, err := pslg.FromPSLG(undirected)
	require.NoError(t, err)
	out, err := oriented.OutwardEdges(low)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.True(t, out[0].Second.Equal(high))
}
