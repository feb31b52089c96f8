package planargears

import (
	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/locate"
	"github.com/vkatalov/planargears/pslg"
	"github.com/vkatalov/planargears/tree"
)

// SnapshotKind tags which field(s) of a Snapshot are populated.
type SnapshotKind int

const (
	KindNodesSorted SnapshotKind = iota
	KindOrientedGraph
	KindInwardEdgeLists
	KindOutwardEdgeLists
	KindRegularizedGraph
	KindWeightedGraph
	KindBottomUpBalanced
	KindTopDownBalanced
	KindChains
	KindTree
	KindResult
)

func (k SnapshotKind) String() string {
	switch k {
	case KindNodesSorted:
		return "NodesSorted"
	case KindOrientedGraph:
		return "OrientedGraph"
	case KindInwardEdgeLists:
		return "InwardEdgeLists"
	case KindOutwardEdgeLists:
		return "OutwardEdgeLists"
	case KindRegularizedGraph:
		return "RegularizedGraph"
	case KindWeightedGraph:
		return "WeightedGraph"
	case KindBottomUpBalanced:
		return "BottomUpBalanced"
	case KindTopDownBalanced:
		return "TopDownBalanced"
	case KindChains:
		return "Chains"
	case KindTree:
		return "Tree"
	case KindResult:
		return "Result"
	default:
		return "Unknown"
	}
}

// Snapshot is one frame of the chain-method transcript (spec.md §5), a
// Go rendering of the sum type
//
//	Snapshot = NodesSorted(list) | OrientedGraph(g) | EdgeLists(list[list])
//	         | Chains(list[chain]) | Tree(t) | Result(path, pair)
//
// Exactly the field(s) matching Kind are populated. Every value was
// deep-copied at the moment it was produced, so mutating it never
// affects the pipeline or any snapshot already delivered.
type Snapshot struct {
	Kind SnapshotKind

	NodesSorted   []geom.Point
	OrientedGraph *pslg.OrientedPSLG
	EdgeLists     [][]pslg.OrientedEdge
	Chains        [][]pslg.OrientedEdge
	Tree          *tree.Tree
	Path          []locate.Direction
	Bracket       locate.Bracket
}

// SnapshotSeq is a lazy, finite, non-restartable pull sequence of
// Snapshot values (spec.md §5). Each step runs only when Next is
// called; nothing downstream of the pipeline is computed early.
type SnapshotSeq struct {
	steps []func() (Snapshot, error)
	pos   int
	err   error
}

func newSnapshotSeq(steps []func() (Snapshot, error)) *SnapshotSeq {
	return &SnapshotSeq{steps: steps}
}

// Next pulls the next snapshot. Once it returns false - because the
// sequence is exhausted or a step failed - every subsequent call also
// returns false; the sequence never rewinds or restarts.
func (s *SnapshotSeq) Next() (Snapshot, bool) {
	if s.err != nil || s.pos >= len(s.steps) {
		return Snapshot{}, false
	}
	snap, err := s.steps[s.pos]()
	s.pos++
	if err != nil {
		s.err = err
		return Snapshot{}, false
	}
	return snap, true
}

// Err returns the error that stopped the sequence early, or nil if it
// ran to completion (or hasn't been pulled from yet).
func (s *SnapshotSeq) Err() error { return s.err }

// cloneEdgeLists copies the outer and inner slices of an edge-list
// snapshot so later in-place weight mutation on the live graph cannot
// reach back into an already-delivered Snapshot.
func cloneEdgeLists(lists [][]pslg.OrientedEdge) [][]pslg.OrientedEdge {
	out := make([][]pslg.OrientedEdge, len(lists))
	for i, l := range lists {
		out[i] = append([]pslg.OrientedEdge{}, l...)
	}
	return out
}
