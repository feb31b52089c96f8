package pslg_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/pslg"
)

func triangle(t *testing.T) (*pslg.PSLG, geom.Point, geom.Point, geom.Point) {
	t.Helper()
	a, b, c := geom.NewPoint(0, 0), geom.NewPoint(4, 0), geom.NewPoint(2, 3)
	g := pslg.NewPSLG()
	require.NoError(t, g.AddNode(a))
	require.NoError(t, g.AddNode(b))
	require.NoError(t, g.AddNode(c))
	require.NoError(t, g.AddEdge(a, b, 4, ""))
	require.NoError(t, g.AddEdge(b, c, 5, ""))
	require.NoError(t, g.AddEdge(a, c, 3, ""))
	return g, a, b, c
}

func TestValidateConnected(t *testing.T) {
	g, _, _, _ := triangle(t)
	require.NoError(t, g.Validate())
}

func TestValidateRejectsDisconnected(t *testing.T) {
	g := pslg.NewPSLG()
	require.NoError(t, g.AddNode(geom.NewPoint(0, 0)))
	require.NoError(t, g.AddNode(geom.NewPoint(9, 9)))
	require.Error(t, g.Validate())
}

func TestValidateRejectsEmpty(t *testing.T) {
	g := pslg.NewPSLG()
	require.Error(t, g.Validate())
}

func TestShortestRoute(t *testing.T) {
	g, a, b, c := triangle(t)
	path, dist, err := g.ShortestRoute(a, b)
	require.NoError(t, err)
	require.Equal(t, int64(4), dist)
	require.Len(t, path, 2)
	require.True(t, path[0].Equal(a))
	require.True(t, path[1].Equal(b))

	_, _, err = g.ShortestRoute(a, c)
	require.NoError(t, err)
}

func TestShortestRouteRejectsUnknownEndpoint(t *testing.T) {
	g, a, _, _ := triangle(t)
	_, _, err := g.ShortestRoute(a, geom.NewPoint(99, 99))
	require.Error(t, err)
}

func TestSkeletonWeight(t *testing.T) {
	g, a, _, _ := triangle(t)
	w, err := g.SkeletonWeight(a)
	require.NoError(t, err)
	// MST of the triangle drops the heaviest edge (b-c, weight 5).
	require.Equal(t, float64(7), w)
}
