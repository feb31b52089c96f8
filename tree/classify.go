package tree

import (
	"fmt"

	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/planarerr"
)

// ClassifyByNode classifies target's Data as seen from source's Data,
// using target's inorder neighbors (Prev/Next) to find its chain
// neighbors — the node-level counterpart of geom.ClassifyByPoints
// (AlgoGEARS' PointType.by_nodes). Both source and target must carry
// geom.Point data. Carried over per spec.md §9's design note; not
// wired into the point-location pipeline (its only consumer in the
// original is convex-hull construction, excluded by spec.md's
// Non-goals).
func ClassifyByNode(source, target *Node) (geom.PointType, error) {
	s, ok := source.Data.(geom.Point)
	if !ok {
		return 0, planarerr.NewTypeFailure("ClassifyByNode", "geom.Point", fmt.Sprintf("%T", source.Data))
	}
	t, ok := target.Data.(geom.Point)
	if !ok {
		return 0, planarerr.NewTypeFailure("ClassifyByNode", "geom.Point", fmt.Sprintf("%T", target.Data))
	}

	if target.Prev == nil {
		next, ok := target.Next.Data.(geom.Point)
		if !ok {
			return 0, planarerr.NewTypeFailure("ClassifyByNode", "geom.Point", fmt.Sprintf("%T", target.Next.Data))
		}
		dir, err := geom.Orient(s, t, next)
		if err != nil {
			return 0, err
		}
		switch {
		case s.X() < t.X():
			if dir == geom.Right {
				return geom.LeftSupporting, nil
			}
			return geom.Convex, nil
		default:
			if dir != geom.Right {
				return geom.RightSupporting, nil
			}
			return geom.Reflex, nil
		}
	}

	if target.Next == nil {
		prev, ok := target.Prev.Data.(geom.Point)
		if !ok {
			return 0, planarerr.NewTypeFailure("ClassifyByNode", "geom.Point", fmt.Sprintf("%T", target.Prev.Data))
		}
		dir, err := geom.Orient(s, t, prev)
		if err != nil {
			return 0, err
		}
		switch {
		case s.X() < t.X():
			if dir != geom.Right {
				return geom.Reflex, nil
			}
			return geom.LeftSupporting, nil
		default:
			if dir == geom.Right {
				return geom.Convex, nil
			}
			return geom.RightSupporting, nil
		}
	}

	prev, ok := target.Prev.Data.(geom.Point)
	if !ok {
		return 0, planarerr.NewTypeFailure("ClassifyByNode", "geom.Point", fmt.Sprintf("%T", target.Prev.Data))
	}
	next, ok := target.Next.Data.(geom.Point)
	if !ok {
		return 0, planarerr.NewTypeFailure("ClassifyByNode", "geom.Point", fmt.Sprintf("%T", target.Next.Data))
	}
	return geom.ClassifyByPoints(s, t, prev, next)
}
