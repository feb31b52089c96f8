package locate_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/locate"
	"github.com/vkatalov/planargears/pslg"
)

// preparataShamosChains reconstructs the ten monotone chains of the
// canonical Preparata-Shamos scenario (spec.md's worked example)
// directly from node coordinates, independent of regularize/chainweight,
// so this package's tests do not depend on those packages.
func preparataShamosChains(t *testing.T) []locate.Chain {
	t.Helper()
	coords := [][2]float64{
		{1, 1}, {7, 1}, {16, 1}, {4, 2}, {13, 3}, {5, 4}, {4, 6},
		{18, 7}, {15, 8}, {10, 9}, {1, 10}, {14, 11}, {7, 12},
	}
	n := make([]geom.Point, len(coords))
	for i, c := range coords {
		n[i] = geom.NewPoint(c[0], c[1])
	}

	e := func(a, b int) pslg.OrientedEdge {
		return pslg.OrientedEdge{First: n[a], Second: n[b]}
	}

	return []locate.Chain{
		{e(0, 10), e(10, 12)},
		{e(0, 1), e(1, 3), e(3, 10), e(10, 12)},
		{e(0, 1), e(1, 3), e(3, 5), e(5, 6), e(6, 10), e(10, 12)},
		{e(0, 1), e(1, 3), e(3, 5), e(5, 6), e(6, 12)},
		{e(0, 1), e(1, 3), e(3, 5), e(5, 9), e(9, 11), e(11, 12)},
		{e(0, 1), e(1, 3), e(3, 8), e(8, 9), e(9, 11), e(11, 12)},
		{e(0, 1), e(1, 8), e(8, 11), e(11, 12)},
		{e(0, 1), e(1, 4), e(4, 7), e(7, 11), e(11, 12)},
		{e(0, 1), e(1, 2), e(2, 4), e(4, 7), e(7, 11), e(11, 12)},
		{e(0, 1), e(1, 2), e(2, 7), e(7, 11), e(11, 12)},
	}
}

func TestQueryPreparataShamos(t *testing.T) {
	chains := preparataShamosChains(t)
	tr := locate.BuildTree(chains)

	path, bracket, err := locate.Query(tr, geom.NewPoint(16, 6))
	require.NoError(t, err)

	want := []locate.Direction{locate.DirRight, locate.DirLeft, locate.DirRight, locate.DirNext}
	require.Equal(t, want, path)

	requireSameChain(t, chains[6], bracket.Left)
	requireSameChain(t, chains[7], bracket.Right)
}

func requireSameChain(t *testing.T, want, got locate.Chain) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.True(t, got[i].Equal(want[i]), "edge %d: got %s want %s", i, got[i], want[i])
	}
}

func TestQueryLeftOfEverything(t *testing.T) {
	chains := preparataShamosChains(t)
	tr := locate.BuildTree(chains)

	_, bracket, err := locate.Query(tr, geom.NewPoint(0, 5))
	require.NoError(t, err)
	require.Nil(t, bracket.Left)
	requireSameChain(t, chains[0], bracket.Right)
}

func TestQueryRightOfEverything(t *testing.T) {
	chains := preparataShamosChains(t)
	tr := locate.BuildTree(chains)

	_, bracket, err := locate.Query(tr, geom.NewPoint(30, 5))
	require.NoError(t, err)
	require.Nil(t, bracket.Right)
	requireSameChain(t, chains[len(chains)-1], bracket.Left)
}
