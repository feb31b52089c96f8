package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/tree"
)

func node(p geom.Point) *tree.Node { return &tree.Node{Data: p} }

func TestClassifyByNodeRejectsNonPointData(t *testing.T) {
	source := &tree.Node{Data: "not-a-point"}
	target := node(geom.NewPoint(0, 0))
	_, err := tree.ClassifyByNode(source, target)
	require.Error(t, err)

	source2 := node(geom.NewPoint(0, 0))
	target2 := &tree.Node{Data: 42}
	_, err = tree.ClassifyByNode(source2, target2)
	require.Error(t, err)
}

func TestClassifyByNodeNoPrevLeftSupporting(t *testing.T) {
	source := node(geom.NewPoint(0, 0))
	target := node(geom.NewPoint(1, 0))
	target.Next = node(geom.NewPoint(2, -1))

	got, err := tree.ClassifyByNode(source, target)
	require.NoError(t, err)
	require.Equal(t, geom.LeftSupporting, got)
}

func TestClassifyByNodeNoPrevConvex(t *testing.T) {
	source := node(geom.NewPoint(0, 0))
	target := node(geom.NewPoint(1, 0))
	target.Next = node(geom.NewPoint(2, 1))

	got, err := tree.ClassifyByNode(source, target)
	require.NoError(t, err)
	require.Equal(t, geom.Convex, got)
}

func TestClassifyByNodeNoPrevReflex(t *testing.T) {
	source := node(geom.NewPoint(1, 0))
	target := node(geom.NewPoint(0, 0))
	target.Next = node(geom.NewPoint(0, 1))

	got, err := tree.ClassifyByNode(source, target)
	require.NoError(t, err)
	require.Equal(t, geom.Reflex, got)
}

func TestClassifyByNodeNoPrevRightSupporting(t *testing.T) {
	source := node(geom.NewPoint(1, 0))
	target := node(geom.NewPoint(0, 0))
	target.Next = node(geom.NewPoint(0, -1))

	got, err := tree.ClassifyByNode(source, target)
	require.NoError(t, err)
	require.Equal(t, geom.RightSupporting, got)
}

func TestClassifyByNodeNoPrevRejectsNonPointNext(t *testing.T) {
	source := node(geom.NewPoint(0, 0))
	target := node(geom.NewPoint(1, 0))
	target.Next = &tree.Node{Data: "nope"}

	_, err := tree.ClassifyByNode(source, target)
	require.Error(t, err)
}

func TestClassifyByNodeNoNextLeftSupporting(t *testing.T) {
	source := node(geom.NewPoint(0, 0))
	target := node(geom.NewPoint(1, 0))
	target.Prev = node(geom.NewPoint(2, -1))

	got, err := tree.ClassifyByNode(source, target)
	require.NoError(t, err)
	require.Equal(t, geom.LeftSupporting, got)
}

func TestClassifyByNodeNoNextReflex(t *testing.T) {
	source := node(geom.NewPoint(0, 0))
	target := node(geom.NewPoint(1, 0))
	target.Prev = node(geom.NewPoint(2, 1))

	got, err := tree.ClassifyByNode(source, target)
	require.NoError(t, err)
	require.Equal(t, geom.Reflex, got)
}

func TestClassifyByNodeNoNextConvex(t *testing.T) {
	source := node(geom.NewPoint(1, 0))
	target := node(geom.NewPoint(0, 0))
	target.Prev = node(geom.NewPoint(0, 1))

	got, err := tree.ClassifyByNode(source, target)
	require.NoError(t, err)
	require.Equal(t, geom.Convex, got)
}

func TestClassifyByNodeNoNextRightSupporting(t *testing.T) {
	source := node(geom.NewPoint(1, 0))
	target := node(geom.NewPoint(0, 0))
	target.Prev = node(geom.NewPoint(0, -1))

	got, err := tree.ClassifyByNode(source, target)
	require.NoError(t, err)
	require.Equal(t, geom.RightSupporting, got)
}

func TestClassifyByNodeNoNextRejectsNonPointPrev(t *testing.T) {
	source := node(geom.NewPoint(0, 0))
	target := node(geom.NewPoint(1, 0))
	target.Prev = &tree.Node{Data: "nope"}

	_, err := tree.ClassifyByNode(source, target)
	require.Error(t, err)
}

func TestClassifyByNodeBothNeighborsDelegatesToClassifyByPoints(t *testing.T) {
	source := node(geom.NewPoint(5, 0))
	target := node(geom.NewPoint(0, 0))
	target.Prev = node(geom.NewPoint(-1, 1))
	target.Next = node(geom.NewPoint(-1, -1))

	got, err := tree.ClassifyByNode(source, target)
	require.NoError(t, err)

	want, err := geom.ClassifyByPoints(geom.NewPoint(5, 0), geom.NewPoint(0, 0), geom.NewPoint(-1, 1), geom.NewPoint(-1, -1))
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestClassifyByNodeBothNeighborsRejectsNonPointPrev(t *testing.T) {
	source := node(geom.NewPoint(5, 0))
	target := node(geom.NewPoint(0, 0))
	target.Prev = &tree.Node{Data: "nope"}
	target.Next = node(geom.NewPoint(0, -1))

	_, err := tree.ClassifyByNode(source, target)
	require.Error(t, err)
}

func TestClassifyByNodeBothNeighborsRejectsNonPointNext(t *testing.T) {
	source := node(geom.NewPoint(5, 0))
	target := node(geom.NewPoint(0, 0))
	target.Prev = node(geom.NewPoint(0, 1))
	target.Next = &tree.Node{Data: "nope"}

	_, err := tree.ClassifyByNode(source, target)
	require.Error(t, err)
}
