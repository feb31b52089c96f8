package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vkatalov/planargears/planarerr"
)

// Point is an n-tuple of real coordinates (n >= 2). Planar algorithms in
// this module require n == 2. Points are immutable by convention: no
// method mutates the receiver's Coords slice.
type Point struct {
	Coords []float64
}

// NewPoint builds a Point from individual coordinates.
func NewPoint(coords ...float64) Point {
	cp := make([]float64, len(coords))
	copy(cp, coords)
	return Point{Coords: cp}
}

// Dim reports the number of coordinates.
func (p Point) Dim() int { return len(p.Coords) }

// X returns the first coordinate.
func (p Point) X() float64 { return p.Coords[0] }

// Y returns the second coordinate.
func (p Point) Y() float64 { return p.Coords[1] }

// Equal reports whether p and q agree in every coordinate within
// Tolerance (absolute). Points of different dimension are never equal.
func (p Point) Equal(q Point) bool {
	if len(p.Coords) != len(q.Coords) {
		return false
	}
	for i := range p.Coords {
		if math.Abs(p.Coords[i]-q.Coords[i]) > Tolerance {
			return false
		}
	}
	return true
}

// Less orders points by raw coordinate-tuple order (x, y, z, ...), the
// primitive comparator. Sweep-line code that needs (y, x) order uses
// ByYX instead — see its doc comment for why the two differ.
func (p Point) Less(q Point) bool {
	n := len(p.Coords)
	if len(q.Coords) < n {
		n = len(q.Coords)
	}
	for i := 0; i < n; i++ {
		if p.Coords[i] != q.Coords[i] {
			return p.Coords[i] < q.Coords[i]
		}
	}
	return len(p.Coords) < len(q.Coords)
}

// ByYX reports whether a sorts strictly before b in the (y, x)
// lexicographic order used throughout regularization, balancing, and
// chain extraction to define "bottom to top". It intentionally differs
// from Less (which orders by raw coordinate-tuple order) because the
// sweep-line direction is always vertical in this module regardless of
// how a Point's tuple happens to be laid out.
func ByYX(a, b Point) bool {
	if a.Y() != b.Y() {
		return a.Y() < b.Y()
	}
	return a.X() < b.X()
}

// ID returns a canonical, full-precision string encoding of p's
// coordinates, suitable for use as a map/graph-vertex key. Two points
// that are Equal within Tolerance but differ in their underlying float
// bits will, by design, produce different IDs: ID is exact while Equal
// is tolerant, a mismatch this module preserves from the original
// implementation (equal-within-tolerance points must still be
// constructed from identical coordinates to collide as map keys).
func (p Point) ID() string {
	parts := make([]string, len(p.Coords))
	for i, c := range p.Coords {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (p Point) String() string {
	parts := make([]string, len(p.Coords))
	for i, c := range p.Coords {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Add returns the coordinate-wise sum of p and q. Both must share a
// dimension; otherwise a TypeFailure is returned.
func (p Point) Add(q Point) (Point, error) {
	if len(p.Coords) != len(q.Coords) {
		return Point{}, planarerr.NewTypeFailure("Point.Add", fmt.Sprintf("dim %d", len(p.Coords)), fmt.Sprintf("dim %d", len(q.Coords)))
	}
	out := make([]float64, len(p.Coords))
	for i := range p.Coords {
		out[i] = p.Coords[i] + q.Coords[i]
	}
	return Point{Coords: out}, nil
}

// Sub returns the coordinate-wise difference p - q.
func (p Point) Sub(q Point) (Point, error) {
	if len(p.Coords) != len(q.Coords) {
		return Point{}, planarerr.NewTypeFailure("Point.Sub", fmt.Sprintf("dim %d", len(p.Coords)), fmt.Sprintf("dim %d", len(q.Coords)))
	}
	out := make([]float64, len(p.Coords))
	for i := range p.Coords {
		out[i] = p.Coords[i] - q.Coords[i]
	}
	return Point{Coords: out}, nil
}

// Centroid returns the coordinate-wise mean of one or more points. All
// points must share a dimension.
func Centroid(points ...Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, planarerr.NewValidationFailure("Centroid", "no points given")
	}
	dim := points[0].Dim()
	sum := make([]float64, dim)
	for _, p := range points {
		if p.Dim() != dim {
			return Point{}, planarerr.NewTypeFailure("Centroid", fmt.Sprintf("dim %d", dim), fmt.Sprintf("dim %d", p.Dim()))
		}
		for i, c := range p.Coords {
			sum[i] += c
		}
	}
	for i := range sum {
		sum[i] /= float64(len(points))
	}
	return Point{Coords: sum}, nil
}

// MinByYX returns the point minimizing (y, x) lexicographic order.
// Panics if points is empty — callers always have a non-empty node set
// by the time this is invoked (an empty PSLG is handled upstream).
func MinByYX(points []Point) Point {
	min := points[0]
	for _, p := range points[1:] {
		if ByYX(p, min) {
			min = p
		}
	}
	return min
}

// MaxByYX returns the point maximizing (y, x) lexicographic order.
func MaxByYX(points []Point) Point {
	max := points[0]
	for _, p := range points[1:] {
		if ByYX(max, p) {
			max = p
		}
	}
	return max
}
