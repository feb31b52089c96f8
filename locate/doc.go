// Package locate implements the chain search tree and point-location
// query of the Lee-Preparata chain method (spec.md §4.F): the ordered
// chain list is built into a threaded AVL by recursive midpoint, and a
// query descends it comparing the target point against each visited
// chain's orientation, producing both the path of directions taken and
// the pair of chains that bracket (or contain) the point.
package locate
