// Package tree implements a height-balanced (AVL) binary search tree and
// its threaded variant: a BST whose otherwise-nil child pointers are
// replaced by inorder predecessor/successor links (prev/next).
//
// Node data is stored as interface{} rather than a generic type
// parameter, ordered by a caller-supplied Less comparator — the same
// closure-based, non-generic style the rest of this module uses for
// comparator-driven collections. Two data values are considered equal
// when neither is Less than the other.
//
// The threaded tree is built from an already-sorted sequence via
// recursive-midpoint construction (FromSorted), then threaded in a
// single inorder pass (Thread). Threading may be circular (the last
// node's Next points back to the first, and vice versa) or acyclic.
// Because circular threads form cycles, Tree.Equal and Tree.Dump never
// walk Prev/Next directly: structural equality compares only Data,
// Left, and Right, and serialization replaces Prev/Next with inorder
// indices (see dump.go).
package tree
