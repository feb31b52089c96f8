// Package planargears implements planar point location over a
// connected planar straight-line graph (PSLG) via the Lee-Preparata
// chain method: a subdivision is regularized, decomposed into
// monotone chains by a balanced-flow argument, and the chains are
// organized into a threaded AVL so a query point can be located
// between two bracketing chains in O(log n) comparisons.
//
// Chain is the single entry point. It returns a lazy, finite,
// non-restartable SnapshotSeq of the ten-step transcript described in
// spec.md §5: from the input's (y, x)-sorted nodes through the final
// search path and bracketing chain pair. Every subsystem lives in its
// own subpackage:
//
//	geom/         points, vectors, orientation, distance metrics
//	pslg/         undirected and oriented planar straight-line graphs
//	regularize/   bottom-up / top-down sweep-line regularization
//	chainweight/  unit-weight assignment, balancing, chain extraction
//	locate/       chains search tree construction and point-location query
//	tree/         the underlying threaded AVL
//	planarerr/    the TypeFailure / ValidationFailure / DomainFailure taxonomy
//	fixtures/     deterministic synthetic PSLG generators for tests
//	interop/      structural export to gonum/graph
//
// The core is single-threaded and synchronous: no operation in this
// package blocks, retries, or spawns a goroutine. See spec.md for the
// full specification this package implements.
package planargears
