package fixtures

import "math/rand"

// config holds the resolved knobs shared by every generator in this
// package. Not every generator honors every field.
type config struct {
	spacing float64
	radius  float64
	jitter  float64
	rng     *rand.Rand
}

func newConfig(opts ...Option) config {
	cfg := config{
		spacing: 1,
		radius:  1,
		jitter:  0,
		rng:     rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option customizes a fixture generator.
type Option func(*config)

// WithSeed freezes the RNG used by stochastic generators (RandomMonotoneLadder).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSpacing sets the distance between adjacent grid columns/rows.
// Panics if spacing <= 0.
func WithSpacing(spacing float64) Option {
	if spacing <= 0 {
		panic("fixtures: WithSpacing(spacing<=0)")
	}
	return func(c *config) { c.spacing = spacing }
}

// WithRadius sets the circumradius used by ConvexPolygon. Panics if
// radius <= 0.
func WithRadius(radius float64) Option {
	if radius <= 0 {
		panic("fixtures: WithRadius(radius<=0)")
	}
	return func(c *config) { c.radius = radius }
}

// WithJitter bounds the horizontal displacement RandomMonotoneLadder
// applies to each rung endpoint. Panics if jitter < 0.
func WithJitter(jitter float64) Option {
	if jitter < 0 {
		panic("fixtures: WithJitter(jitter<0)")
	}
	return func(c *config) { c.jitter = jitter }
}
