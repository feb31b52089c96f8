// Package chainweight implements the weight-balancing and monotone-chain
// extraction step of the Lee-Preparata chain method (spec.md §4.E):
// every edge of a regular oriented PSLG is given unit weight, then two
// sweeps (bottom-up, top-down) correct the per-node in/out weight
// imbalance so the result is a feasible unit lower-bound flow from the
// graph's (y, x)-minimum node to its maximum. Repeatedly peeling off the
// leftmost available outward edge from the minimum then produces the
// chain decomposition, left to right, with every edge's weight reaching
// exactly zero.
package chainweight
