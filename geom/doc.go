// Package geom provides the geometric primitives planargears builds on:
// Point and Vector n-tuples, the three-valued orientation predicate,
// polar-angle helpers used to sort edges around a node, distance
// metrics, and the PointType classifier carried over from the original
// AlgoGEARS implementation.
//
// Tolerance: Point equality uses a fixed absolute tolerance of 1e-3
// (Tolerance, below). This is a contract the regularization and chain
// subsystems rely on to match nodes across independently constructed
// sets — it is not configurable.
//
// Complexity: every primitive in this package is O(1) or O(n) in the
// number of coordinates; allocations are limited to coordinate slices
// of that size (Orient, for one, builds two intermediate Vectors).
package geom

// Tolerance is the fixed absolute tolerance used by Point.Equal.
// Algorithms downstream of geom rely on this exact value to match
// points constructed independently; it is not user-tunable.
const Tolerance = 1e-3
