package fixtures

import (
	"fmt"

	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/pslg"
)

// Grid returns a connected rows x cols orthogonal grid PSLG: node (r, c)
// sits at (c*spacing, r*spacing) and is joined to its neighbors (r, c+1)
// and (r+1, c), i.e. the next node along x and the next node along y.
// rows and cols must each be >= 1.
func Grid(rows, cols int, opts ...Option) (*pslg.PSLG, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("fixtures.Grid: rows=%d, cols=%d: each must be >= 1", rows, cols)
	}
	cfg := newConfig(opts...)

	g := pslg.NewPSLG()
	at := make([][]geom.Point, rows)
	for r := 0; r < rows; r++ {
		at[r] = make([]geom.Point, cols)
		for c := 0; c < cols; c++ {
			p := geom.NewPoint(float64(c)*cfg.spacing, float64(r)*cfg.spacing)
			at[r][c] = p
			if err := g.AddNode(p); err != nil {
				return nil, err
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := g.AddEdge(at[r][c], at[r][c+1], 0, ""); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := g.AddEdge(at[r][c], at[r+1][c], 0, ""); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}
