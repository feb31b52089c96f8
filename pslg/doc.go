// Package pslg implements planar straight-line graphs (PSLGs): an
// undirected variant (PSLG) and a directed variant (OrientedPSLG) in
// which every edge is oriented from its (y, x)-lexicographically lower
// endpoint to its higher one.
//
// Both variants are stored on top of a small in-package graph store
// (graphStore, in store.go): points become string-keyed vertices via
// geom.Point.ID, and domain edges become weighted, pointer-addressable
// edge records. It is scoped to exactly what PSLG and OrientedPSLG
// need — vertex membership, ordered-pair edge lookup, a flat edge list
// — with planar-specific semantics (polar-angle-sorted inward and
// outward edge lists, upward orientation, regularity) layered on top.
//
// Concurrency: PSLG and OrientedPSLG guard their point/name metadata
// and graphStore with their own sync.RWMutex, even though the
// planargears pipeline itself is strictly sequential — this only
// protects a caller that shares one graph across goroutines while a
// pipeline run is in progress.
package pslg
