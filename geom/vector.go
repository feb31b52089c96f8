package geom

import (
	"fmt"
	"math"

	"github.com/vkatalov/planargears/planarerr"
)

// Vector is an n-tuple with the same shape as Point, supporting the
// linear-algebra operations Point deliberately omits (dot/cross
// products, norms, in-place normalization).
type Vector struct {
	Coords []float64
}

// NewVector builds a Vector from individual coordinates.
func NewVector(coords ...float64) Vector {
	cp := make([]float64, len(coords))
	copy(cp, coords)
	return Vector{Coords: cp}
}

// FromPoints returns the vector from -> to, i.e. to.Coords - from.Coords.
func FromPoints(from, to Point) (Vector, error) {
	d, err := to.Sub(from)
	if err != nil {
		return Vector{}, planarerr.NewTypeFailure("Vector.FromPoints", "matching dims", err.Error())
	}
	return Vector{Coords: d.Coords}, nil
}

func (v Vector) X() float64 { return v.Coords[0] }
func (v Vector) Y() float64 { return v.Coords[1] }
func (v Vector) Dim() int   { return len(v.Coords) }

// Dot returns the dot product of v and w. Both must share a dimension.
func Dot(v, w Vector) (float64, error) {
	if len(v.Coords) != len(w.Coords) {
		return 0, planarerr.NewTypeFailure("Vector.Dot", fmt.Sprintf("dim %d", len(v.Coords)), fmt.Sprintf("dim %d", len(w.Coords)))
	}
	var sum float64
	for i := range v.Coords {
		sum += v.Coords[i] * w.Coords[i]
	}
	return sum, nil
}

// Cross2D returns the scalar (z-component) of the 2D cross product
// v x w = v.x*w.y - v.y*w.x. Both vectors must be 2D.
func Cross2D(v, w Vector) (float64, error) {
	if v.Dim() != 2 || w.Dim() != 2 {
		return 0, planarerr.NewTypeFailure("Vector.Cross2D", "dim 2", fmt.Sprintf("dims %d,%d", v.Dim(), w.Dim()))
	}
	return v.X()*w.Y() - v.Y()*w.X(), nil
}

// Norm returns the norm of v under the given Metric.
func (v Vector) Norm(m Metric) (float64, error) {
	switch m {
	case L1:
		var sum float64
		for _, c := range v.Coords {
			sum += math.Abs(c)
		}
		return sum, nil
	case L2:
		var sum float64
		for _, c := range v.Coords {
			sum += c * c
		}
		return math.Sqrt(sum), nil
	case LInf:
		var max float64
		for _, c := range v.Coords {
			if a := math.Abs(c); a > max {
				max = a
			}
		}
		return max, nil
	default:
		return 0, planarerr.NewValidationFailure("Vector.Norm", fmt.Sprintf("unknown metric %q", m))
	}
}

// Normalize rescales v in place to unit norm under the given Metric.
func (v *Vector) Normalize(m Metric) error {
	n, err := v.Norm(m)
	if err != nil {
		return err
	}
	if n == 0 {
		return planarerr.NewValidationFailure("Vector.Normalize", "cannot normalize the zero vector")
	}
	for i := range v.Coords {
		v.Coords[i] /= n
	}
	return nil
}
