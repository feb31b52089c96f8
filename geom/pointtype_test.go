package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkatalov/planargears/geom"
)

func TestClassifyByPointsConvex(t *testing.T) {
	// rot = 0: source sits on the positive x-axis as seen from target.
	source := geom.NewPoint(5, 0)
	target := geom.NewPoint(0, 0)
	left := geom.NewPoint(math.Cos(1.5708), math.Sin(1.5708))
	right := geom.NewPoint(math.Cos(3.6416), math.Sin(3.6416))

	got, err := geom.ClassifyByPoints(source, target, left, right)
	require.NoError(t, err)
	require.Equal(t, geom.Convex, got)
	require.Equal(t, "convex", got.String())
}

func TestClassifyByPointsReflex(t *testing.T) {
	source := geom.NewPoint(0, 2)
	target := geom.NewPoint(2, 0)
	left := geom.NewPoint(0, 0)
	right := geom.NewPoint(2, 2)

	got, err := geom.ClassifyByPoints(source, target, left, right)
	require.NoError(t, err)
	require.Equal(t, geom.Reflex, got)
	require.Equal(t, "reflex", got.String())
}

func TestClassifyByPointsLeftSupporting(t *testing.T) {
	source := geom.NewPoint(5, 0)
	target := geom.NewPoint(0, 0)
	left := geom.NewPoint(1, 1)
	right := geom.NewPoint(1, 2)

	got, err := geom.ClassifyByPoints(source, target, left, right)
	require.NoError(t, err)
	require.Equal(t, geom.LeftSupporting, got)
	require.Equal(t, "left_supporting", got.String())
}

func TestClassifyByPointsRightSupporting(t *testing.T) {
	source := geom.NewPoint(5, 0)
	target := geom.NewPoint(0, 0)
	left := geom.NewPoint(math.Cos(4), math.Sin(4))
	right := geom.NewPoint(math.Cos(5), math.Sin(5))

	got, err := geom.ClassifyByPoints(source, target, left, right)
	require.NoError(t, err)
	require.Equal(t, geom.RightSupporting, got)
	require.Equal(t, "right_supporting", got.String())
}

func TestClassifyByPointsRejectsDegenerateCollinearNeighbors(t *testing.T) {
	// left and right lie on the same ray from target (same polar angle),
	// a configuration the geometry of a simple chain should never
	// produce: no classified region covers it.
	source := geom.NewPoint(5, 0)
	target := geom.NewPoint(0, 0)
	left := geom.NewPoint(1*math.Cos(4), 1*math.Sin(4))
	right := geom.NewPoint(2*math.Cos(4), 2*math.Sin(4))

	_, err := geom.ClassifyByPoints(source, target, left, right)
	require.Error(t, err)
}
