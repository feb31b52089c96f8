package fixtures

import (
	"fmt"
	"math"

	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/pslg"
)

// ConvexPolygon returns the boundary cycle of a regular n-gon inscribed
// in a circle of the configured radius, n >= 3. The vertices are placed
// starting at angle 0 and proceeding counterclockwise, giving a single
// connected, simple closed chain of edges.
func ConvexPolygon(n int, opts ...Option) (*pslg.PSLG, error) {
	if n < 3 {
		return nil, fmt.Errorf("fixtures.ConvexPolygon: n=%d: must be >= 3", n)
	}
	cfg := newConfig(opts...)

	points := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = geom.NewPoint(cfg.radius*math.Cos(theta), cfg.radius*math.Sin(theta))
	}

	g := pslg.NewPSLG()
	for _, p := range points {
		if err := g.AddNode(p); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		if err := g.AddEdge(points[i], points[(i+1)%n], 0, ""); err != nil {
			return nil, err
		}
	}
	return g, nil
}
