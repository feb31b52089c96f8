package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkatalov/planargears/tree"
)

func intLess(a, b interface{}) bool { return a.(int) < b.(int) }

func TestAVLInsertAscendingRotatesLeft(t *testing.T) {
	tr := tree.NewTree(intLess)
	for _, v := range []int{1, 2, 3} {
		tr.Insert(v)
	}
	require.NotNil(t, tr.Root)
	require.Equal(t, 1, tr.Root.Height)
	require.Equal(t, 2, tr.Root.Data)
	require.Equal(t, 1, tr.Root.Left.Data)
	require.Equal(t, 3, tr.Root.Right.Data)
}

func TestAVLInsertDescendingRotatesRight(t *testing.T) {
	tr := tree.NewTree(intLess)
	for _, v := range []int{3, 2, 1} {
		tr.Insert(v)
	}
	require.NotNil(t, tr.Root)
	require.Equal(t, 1, tr.Root.Height)
	require.Equal(t, 2, tr.Root.Data)
	require.Equal(t, 1, tr.Root.Left.Data)
	require.Equal(t, 3, tr.Root.Right.Data)
}

func TestAVLDeleteKeepsBalance(t *testing.T) {
	tr := tree.NewTree(intLess)
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		tr.Insert(v)
	}
	tr.Delete(3)
	inorder := tr.TraverseInorder()
	got := make([]int, len(inorder))
	for i, n := range inorder {
		got[i] = n.Data.(int)
	}
	require.Equal(t, []int{1, 4, 5, 7, 8, 9}, got)
}

func TestTreeEqualIgnoresThreads(t *testing.T) {
	a := tree.FromSorted([]interface{}{1, 2, 3}, intLess)
	b := tree.FromSorted([]interface{}{1, 2, 3}, intLess)
	a.Thread(true)
	require.True(t, a.Equal(b))
}
