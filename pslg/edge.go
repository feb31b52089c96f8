package pslg

import (
	"fmt"

	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/planarerr"
)

// Edge is an undirected PSLG edge. Equality is unordered: (A,B) == (B,A).
type Edge struct {
	First, Second geom.Point
	Weight        int64
	Name          string
}

// Equal reports unordered equality of endpoints (weight and name do not
// participate, matching spec.md §3's "equality is unordered" rule).
func (e Edge) Equal(o Edge) bool {
	return (e.First.Equal(o.First) && e.Second.Equal(o.Second)) ||
		(e.First.Equal(o.Second) && e.Second.Equal(o.First))
}

// OtherNode returns the endpoint of e that is not v. It returns a
// ValidationFailure if v is not one of e's endpoints.
func (e Edge) OtherNode(v geom.Point) (geom.Point, error) {
	if e.First.Equal(v) {
		return e.Second, nil
	}
	if e.Second.Equal(v) {
		return e.First, nil
	}
	return geom.Point{}, planarerr.NewValidationFailure("Edge.OtherNode", fmt.Sprintf("%s is not an endpoint of %s", v, e))
}

func (e Edge) String() string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("%s->%s", e.First, e.Second)
}

// OrientedEdge is a directed PSLG edge. Equality is ordered and ignores
// weight, matching spec.md §3.
type OrientedEdge struct {
	First, Second geom.Point
	Weight        int64
	Name          string
}

// Equal reports ordered equality of endpoints, ignoring weight.
func (e OrientedEdge) Equal(o OrientedEdge) bool {
	return e.First.Equal(o.First) && e.Second.Equal(o.Second)
}

// OtherNode returns the endpoint of e that is not v.
func (e OrientedEdge) OtherNode(v geom.Point) (geom.Point, error) {
	if e.First.Equal(v) {
		return e.Second, nil
	}
	if e.Second.Equal(v) {
		return e.First, nil
	}
	return geom.Point{}, planarerr.NewValidationFailure("OrientedEdge.OtherNode", fmt.Sprintf("%s is not an endpoint of %s", v, e))
}

// Reversed returns the edge with First/Second swapped, weight preserved.
func (e OrientedEdge) Reversed() OrientedEdge {
	return OrientedEdge{First: e.Second, Second: e.First, Weight: e.Weight, Name: e.Name}
}

func (e OrientedEdge) String() string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("%s->%s", e.First, e.Second)
}
