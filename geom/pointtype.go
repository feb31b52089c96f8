package geom

import (
	"math"

	"github.com/vkatalov/planargears/planarerr"
)

// PointType classifies a target point relative to its neighbors along a
// chain, as seen from a source point — carried over from the original
// AlgoGEARS implementation's convex-hull machinery (spec.md §9's design
// note). It is not wired into the chain/point-location pipeline: its
// only consumer in the original is hull construction, which spec.md's
// Non-goals exclude. It is kept here as a tested, standalone primitive
// because the design note explicitly calls out its unreachable branch.
type PointType int

const (
	Convex PointType = iota
	Reflex
	LeftSupporting
	RightSupporting
)

func (t PointType) String() string {
	switch t {
	case Convex:
		return "convex"
	case Reflex:
		return "reflex"
	case LeftSupporting:
		return "left_supporting"
	default:
		return "right_supporting"
	}
}

// ClassifyByPoints classifies target as seen from source, given target's
// chain neighbors left and right. It returns a DomainFailure if the
// computed angles fall into none of the four classified regions — a
// configuration the geometry of a simple chain should make unreachable.
// planargears does not guess an intended classification for that branch;
// it propagates the failure exactly as spec.md §9 requires.
func ClassifyByPoints(source, target, left, right Point) (PointType, error) {
	rot := NonnegPolarAngle(source, target)
	polarAngle := func(p Point) float64 {
		angle := NonnegPolarAngle(p, target)
		shifted := angle - rot
		if angle < rot {
			shifted += 2 * math.Pi
		}
		return shifted
	}

	angle1, angle2 := polarAngle(left), polarAngle(right)
	if angle1 > angle2 {
		angle1, angle2 = angle2, angle1
	}

	convexOrReflex := angle1 > 0 && angle1 <= math.Pi && math.Pi <= angle2 && angle2 < 2*math.Pi
	if convexOrReflex && angle2 < angle1+math.Pi {
		return Convex, nil
	}
	if convexOrReflex && angle2 > angle1+math.Pi {
		return Reflex, nil
	}
	if angle1 >= 0 && angle1 < angle2 && angle2 < math.Pi {
		return LeftSupporting, nil
	}
	if angle1 == 0 {
		angle1 = 2 * math.Pi
		angle1, angle2 = angle2, angle1
	}
	if angle1 > math.Pi && angle1 < angle2 && angle2 <= 2*math.Pi {
		return RightSupporting, nil
	}

	return 0, planarerr.NewDomainFailure("ClassifyByPoints", "angles fall outside every classified region")
}
