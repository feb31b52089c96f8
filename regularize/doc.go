// Package regularize implements the two sweep-line passes (bottom-up
// and top-down) that make a directed PSLG regular: every node other
// than the global minimum gets at least one inward edge, and every
// node other than the global maximum gets at least one outward edge.
// Regularization never removes edges, only adds the minimum needed to
// satisfy that invariant, and never alters the planarity of the
// embedding it augments.
package regularize
