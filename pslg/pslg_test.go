package pslg_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/pslg"
)

func TestPSLGAddEdgeReverseIsNoop(t *testing.T) {
	g, a, b, _ := triangle(t)
	require.NoError(t, g.AddEdge(b, a, 0, "reverse-ab"))
	require.Len(t, g.Edges(), 3)
}

func TestPSLGEdgesOf(t *testing.T) {
	g, a, b, c := triangle(t)
	es, err := g.EdgesOf(a)
	require.NoError(t, err)
	require.Len(t, es, 2)
	for _, e := range es {
		other, err := e.OtherNode(a)
		require.NoError(t, err)
		require.True(t, other.Equal(b) || other.Equal(c))
	}
}

func TestPSLGClone(t *testing.T) {
	g, a, b, _ := triangle(t)
	clone := g.Clone()
	require.NoError(t, clone.RemoveNode(a))
	require.True(t, g.HasNode(a), "mutating the clone must not affect the original")

	es, err := clone.EdgesOf(b)
	require.NoError(t, err)
	require.Len(t, es, 1) // only b-c remains once a is removed from the clone
}

func TestEdgeEqualIsUnordered(t *testing.T) {
	a, b := geom.NewPoint(0, 0), geom.NewPoint(1, 1)
	e1 := pslg.Edge{First: a, Second: b, Name: "e"}
	e2 := pslg.Edge{First: b, Second: a, Name: "different-name"}
	require.True(t, e1.Equal(e2))
}

func TestOrientedEdgeEqualIsOrdered(t *testing.T) {
	a, b := geom.NewPoint(0, 0), geom.NewPoint(1, 1)
	e1 := pslg.OrientedEdge{First: a, Second: b}
	e2 := pslg.OrientedEdge{First: b, Second: a}
	require.False(t, e1.Equal(e2))
	require.True(t, e1.Equal(e1.Reversed().Reversed()))
}
