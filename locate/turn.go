package locate

import (
	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/planarerr"
)

// Turn locates the edge e in chain such that e.First.Y <= p.Y <=
// e.Second.Y and returns its orientation relative to p (spec.md §4.F).
// If e's endpoints and p all share the same y, the result is LEFT when
// p.X < e.First.X, RIGHT when p.X > e.Second.X, and STRAIGHT otherwise.
func Turn(chain Chain, p geom.Point) (geom.Orientation, error) {
	for _, e := range chain {
		if e.First.Y() == p.Y() && p.Y() == e.Second.Y() {
			switch {
			case p.X() < e.First.X():
				return geom.Left, nil
			case p.X() > e.Second.X():
				return geom.Right, nil
			default:
				return geom.Straight, nil
			}
		}
		if e.First.Y() <= p.Y() && p.Y() <= e.Second.Y() {
			return geom.Orient(e.First, e.Second, p)
		}
	}
	return geom.Straight, planarerr.NewDomainFailure("locate.Turn", "no edge in the chain brackets the query point's y coordinate")
}
