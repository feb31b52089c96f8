package fixtures

import (
	"fmt"

	"github.com/vkatalov/planargears/geom"
	"github.com/vkatalov/planargears/pslg"
)

// RandomMonotoneLadder returns a connected PSLG shaped like a ladder:
// two rails of `rungs` nodes each, strictly increasing in y level by
// level, joined rail-to-rail at every level. Each node's x coordinate is
// jittered by up to WithJitter's bound (deterministic for a fixed seed),
// while y stays exactly level-aligned, so the result is always strictly
// y-monotone top to bottom regardless of jitter. rungs must be >= 2.
func RandomMonotoneLadder(rungs int, seed int64, opts ...Option) (*pslg.PSLG, error) {
	if rungs < 2 {
		return nil, fmt.Errorf("fixtures.RandomMonotoneLadder: rungs=%d: must be >= 2", rungs)
	}
	opts = append(opts, WithSeed(seed))
	cfg := newConfig(opts...)

	jitter := func() float64 {
		if cfg.jitter == 0 {
			return 0
		}
		return cfg.rng.Float64()*2*cfg.jitter - cfg.jitter
	}

	left := make([]geom.Point, rungs)
	right := make([]geom.Point, rungs)
	g := pslg.NewPSLG()
	for i := 0; i < rungs; i++ {
		y := float64(i) * cfg.spacing
		left[i] = geom.NewPoint(-cfg.spacing+jitter(), y)
		right[i] = geom.NewPoint(cfg.spacing+jitter(), y)
		if err := g.AddNode(left[i]); err != nil {
			return nil, err
		}
		if err := g.AddNode(right[i]); err != nil {
			return nil, err
		}
		if err := g.AddEdge(left[i], right[i], 0, ""); err != nil {
			return nil, err
		}
		if i > 0 {
			if err := g.AddEdge(left[i-1], left[i], 0, ""); err != nil {
				return nil, err
			}
			if err := g.AddEdge(right[i-1], right[i], 0, ""); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
