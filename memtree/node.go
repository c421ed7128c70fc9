package memtree

// Node is one segment of the tree. A node may hold a value, hold children, or
// both; intermediate segments created on the way to a deeper write exist with
// no value at all, which is distinct from holding an explicit nil.
type Node struct {
	name     string
	value    any
	hasValue bool

	parent   *Node
	children map[string]*Node
	// sibling insertion order, for deterministic traversal and display
	order []string
}

func newNode(name string, parent *Node) *Node {
	return &Node{
		name:     name,
		parent:   parent,
		children: map[string]*Node{},
	}
}

// Name returns the segment label this node represents under its parent; empty
// for the root.
func (n *Node) Name() string {
	return n.name
}

// Value returns the stored value and whether one is present. A stored nil is
// present; a never-written node is not.
func (n *Node) Value() (any, bool) {
	return n.value, n.hasValue
}

// Parent returns the owning node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Child looks up a direct child by segment name.
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.children[name]
	return c, ok
}

// Children returns the direct children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.children[name])
	}
	return out
}

// FullPath reconstructs the path from the root to this node by walking parent
// references upward. The walk is O(depth) and terminates at the root, whose
// parent is nil.
func (n *Node) FullPath() Path {
	var depth int
	for cur := n; cur.parent != nil; cur = cur.parent {
		depth++
	}
	path := make(Path, depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		depth--
		path[depth] = cur.name
	}
	return path
}

func (n *Node) setValue(v any) {
	n.value = v
	n.hasValue = true
}

// addChild creates (or returns) the child for a segment name.
func (n *Node) child(name string) *Node {
	if c, ok := n.children[name]; ok {
		return c
	}
	c := newNode(name, n)
	n.children[name] = c
	n.order = append(n.order, name)
	return c
}

// removeChild severs a child (and implicitly its whole subtree) from this
// node. Reports whether the child existed.
func (n *Node) removeChild(name string) bool {
	c, ok := n.children[name]
	if !ok {
		return false
	}
	c.parent = nil
	delete(n.children, name)
	for i, seg := range n.order {
		if seg == name {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	return true
}

// depth returns the longest edge count from this node down to a leaf.
func (n *Node) depth() int {
	max := 0
	for _, name := range n.order {
		if d := n.children[name].depth() + 1; d > max {
			max = d
		}
	}
	return max
}

// countNodes returns the size of the subtree rooted here, including n itself.
func (n *Node) countNodes() int {
	count := 1
	for _, c := range n.children {
		count += c.countNodes()
	}
	return count
}
