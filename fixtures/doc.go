// Package fixtures builds deterministic synthetic PSLGs for property-based
// tests of regularize, chainweight, and locate. Every generator is pure and
// reproducible: the same parameters (and, for the stochastic ones, the same
// seed) always produce the same graph, following the builder package's
// WithSeed convention.
package fixtures
