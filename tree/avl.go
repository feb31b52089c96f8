package tree

// Less reports whether a orders strictly before b. Two values are
// considered equal by the tree when neither is Less than the other —
// the same convention the AVL auxiliary in the original chain-method
// implementation uses for its plain '<'/'>' comparisons.
type Less func(a, b interface{}) bool

// Tree is an AVL-balanced binary search tree over interface{} data,
// ordered by Less. A zero Tree is not usable; construct with NewTree
// or FromSorted.
type Tree struct {
	Root *Node
	Less Less
}

// NewTree returns an empty tree ordered by less.
func NewTree(less Less) *Tree {
	return &Tree{Less: less}
}

func (t *Tree) dataEqual(a, b interface{}) bool {
	return !t.Less(a, b) && !t.Less(b, a)
}

// Insert adds data to the tree, rebalancing on the way back up.
func (t *Tree) Insert(data interface{}) {
	t.Root = t.insert(data, t.Root)
}

func (t *Tree) insert(data interface{}, node *Node) *Node {
	if node == nil {
		return &Node{Data: data}
	}
	if t.Less(data, node.Data) {
		node.Left = t.insert(data, node.Left)
	} else {
		node.Right = t.insert(data, node.Right)
	}
	node.setHeight()
	return t.rebalance(node)
}

// Delete removes the node equal to data, if present, rebalancing on
// the way back up.
func (t *Tree) Delete(data interface{}) {
	t.Root = t.delete(data, t.Root)
}

func (t *Tree) delete(data interface{}, node *Node) *Node {
	if node == nil {
		return nil
	}
	switch {
	case t.Less(data, node.Data):
		node.Left = t.delete(data, node.Left)
	case t.Less(node.Data, data):
		node.Right = t.delete(data, node.Right)
	default:
		if node.Left == nil || node.Right == nil {
			if node.Left != nil {
				return node.Left
			}
			return node.Right
		}
		successor := node.Right.leftmost()
		copyContentsWithoutChildren(successor, node)
		node.Right = t.delete(successor.Data, node.Right)
	}
	node.setHeight()
	return t.rebalance(node)
}

// rebalance restores the AVL height invariant at node, applying a
// single or double rotation when |balanceFactor| == 2.
func (t *Tree) rebalance(node *Node) *Node {
	switch node.balanceFactor() {
	case -2:
		if node.Left.balanceFactor() == 1 {
			node.Left = t.rotateLeft(node.Left)
		}
		return t.rotateRight(node)
	case 2:
		if node.Right.balanceFactor() == -1 {
			node.Right = t.rotateRight(node.Right)
		}
		return t.rotateLeft(node)
	default:
		return node
	}
}

func (t *Tree) rotateLeft(node *Node) *Node {
	heavy := node.Right
	node.Right = heavy.Left
	heavy.Left = node
	node.setHeight()
	heavy.setHeight()
	return heavy
}

func (t *Tree) rotateRight(node *Node) *Node {
	heavy := node.Left
	node.Left = heavy.Right
	heavy.Right = node
	node.setHeight()
	heavy.setHeight()
	return heavy
}

// TraverseInorder returns every node, inorder.
func (t *Tree) TraverseInorder() []*Node {
	if t.Root == nil {
		return nil
	}
	return t.Root.traverseInorder(nil)
}

// TraversePreorder returns every node, preorder.
func (t *Tree) TraversePreorder() []*Node {
	if t.Root == nil {
		return nil
	}
	return t.Root.traversePreorder(nil)
}

// TraversePostorder returns every node, postorder.
func (t *Tree) TraversePostorder() []*Node {
	if t.Root == nil {
		return nil
	}
	return t.Root.traversePostorder(nil)
}

// LeavesInorder returns just the leaf nodes, inorder.
func (t *Tree) LeavesInorder() []*Node {
	var out []*Node
	for _, n := range t.TraverseInorder() {
		if n.IsLeaf() {
			out = append(out, n)
		}
	}
	return out
}

// Equal reports structural equality with o: same Data at every
// position in the same shape. Prev/Next threads are not compared —
// they follow from shape (see the tree package doc).
func (t *Tree) Equal(o *Tree) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Root.equal(o.Root, t.dataEqual)
}
