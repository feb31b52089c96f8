// Package interop exports a regularized OrientedPSLG into gonum's graph
// representation so callers can run further gonum-based analysis
// (shortest paths, topological sort, centrality, ...) on top of this
// module's planar structures. It is a one-way structural adapter: no
// rendering, no round trip back into pslg.
package interop
