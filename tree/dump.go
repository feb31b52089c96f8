package tree

// NodeDump is the structural dump form of a Node: Left/Right are
// nested recursively, while Prev/Next — which may form cycles under
// circular threading — are replaced by the 0-based inorder index of
// the node they reference (nil when the thread is absent), per
// spec.md §6/§9.
type NodeDump struct {
	Data        interface{}
	Left, Right *NodeDump
	Prev, Next  *int
}

// Dump produces a structural dump of t. It never walks Prev/Next
// pointers directly — only the inorder-index rewrite above — so it
// terminates even when the tree is circularly threaded.
func (t *Tree) Dump() *NodeDump {
	if t.Root == nil {
		return nil
	}
	index := make(map[*Node]int)
	for i, n := range t.TraverseInorder() {
		index[n] = i
	}
	var dump func(n *Node) *NodeDump
	dump = func(n *Node) *NodeDump {
		if n == nil {
			return nil
		}
		d := &NodeDump{Data: n.Data, Left: dump(n.Left), Right: dump(n.Right)}
		if n.Prev != nil {
			i := index[n.Prev]
			d.Prev = &i
		}
		if n.Next != nil {
			i := index[n.Next]
			d.Next = &i
		}
		return d
	}
	return dump(t.Root)
}

// Load reverses Dump: it rebuilds the node shape from d, then patches
// every node's Prev/Next to the node at the recorded inorder index.
func Load(d *NodeDump, less Less) *Tree {
	t := &Tree{Less: less}
	if d == nil {
		return t
	}
	var build func(d *NodeDump) *Node
	build = func(d *NodeDump) *Node {
		if d == nil {
			return nil
		}
		n := &Node{Data: d.Data, Left: build(d.Left), Right: build(d.Right)}
		n.setHeight()
		return n
	}
	t.Root = build(d)

	nodes := t.TraverseInorder()
	dumps := make([]*NodeDump, 0, len(nodes))
	var flattenInorder func(d *NodeDump)
	flattenInorder = func(d *NodeDump) {
		if d == nil {
			return
		}
		flattenInorder(d.Left)
		dumps = append(dumps, d)
		flattenInorder(d.Right)
	}
	flattenInorder(d)

	for i, n := range nodes {
		if dumps[i].Prev != nil {
			n.Prev = nodes[*dumps[i].Prev]
		}
		if dumps[i].Next != nil {
			n.Next = nodes[*dumps[i].Next]
		}
	}
	return t
}
