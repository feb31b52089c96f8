package geom

import (
	"fmt"
	"math"

	"github.com/vkatalov/planargears/planarerr"
)

// Dist returns the distance between p and q under the given Metric.
func Dist(p, q Point, m Metric) (float64, error) {
	v, err := FromPoints(q, p) // p - q, magnitude is symmetric either way
	if err != nil {
		return 0, planarerr.NewTypeFailure("Dist", "matching dims", err.Error())
	}
	return v.Norm(m)
}

// Line2D is a line through two distinct 2D points, in implicit form
// a*x + b*y + c = 0.
type Line2D struct {
	P1, P2 Point
	a, b, c float64
}

// NewLine2D builds the line through p1 and p2. Both must be 2D points
// and must be distinct (within Tolerance); otherwise a ValidationFailure
// is returned, matching the "degenerate 2D line" invariant in spec.md §7.
func NewLine2D(p1, p2 Point) (Line2D, error) {
	if p1.Dim() != 2 || p2.Dim() != 2 {
		return Line2D{}, planarerr.NewValidationFailure("NewLine2D", "both points must be 2D")
	}
	if p1.Equal(p2) {
		return Line2D{}, planarerr.NewValidationFailure("NewLine2D", "points must be distinct")
	}
	return Line2D{
		P1: p1,
		P2: p2,
		a:  p1.Y() - p2.Y(),
		b:  p2.X() - p1.X(),
		c:  p1.X()*p2.Y() - p2.X()*p1.Y(),
	}, nil
}

// A, B, C return the coefficients of a*x + b*y + c = 0.
func (l Line2D) A() float64 { return l.a }
func (l Line2D) B() float64 { return l.b }
func (l Line2D) C() float64 { return l.c }

// Slope returns the line's slope, or negative infinity for a vertical line.
func (l Line2D) Slope() float64 {
	if l.b == 0 {
		return math.Inf(-1)
	}
	return -l.a / l.b
}

// YIntercept returns the line's y-intercept, or negative infinity for a
// vertical line.
func (l Line2D) YIntercept() float64 {
	if l.b == 0 {
		return math.Inf(-1)
	}
	return -l.c / l.b
}

// DistToLine returns the perpendicular distance from p to l under the
// given Metric. Only L2 (Euclidean) is supported: the original
// implementation's non-Euclidean branch for point-to-line distance
// referenced a malformed two-argument max(abs(a, b)) expression that was
// never exercised and is not specified here (spec.md §9's Open
// Question) — requesting any other metric returns a ValidationFailure
// rather than guessing an intended denominator.
func DistToLine(p Point, l Line2D, m Metric) (float64, error) {
	if m != L2 {
		return 0, planarerr.NewValidationFailure("DistToLine", fmt.Sprintf("metric %s not supported for point-to-line distance", m))
	}
	num := math.Abs(l.a*p.X() + l.b*p.Y() + l.c)
	den := math.Sqrt(l.a*l.a + l.b*l.b)
	return num / den, nil
}
