package memtree

import (
	"fmt"
	"slices"
)

// Tree is a hierarchical key-value store: dot-delimited paths map onto a tree
// of nodes, each optionally holding a value. The zero root node always exists
// and is never removable through the tree handle.
//
// Tree is not safe for concurrent use; callers that share one across
// goroutines must serialize access externally.
type Tree struct {
	root *Node
}

// New returns an empty tree containing only the root node.
func New() *Tree {
	return &Tree{root: newNode("", nil)}
}

// Root exposes the root node for traversal consumers (visualizers, tests).
func (t *Tree) Root() *Node {
	return t.root
}

// Set stores value at path, creating intermediate nodes as needed and
// overwriting any prior value at the terminal node. The value must fit the
// storable data model (see NormalizeValue) and the path must be non-empty
// with non-empty segments.
func (t *Tree) Set(path Path, value any) error {
	if err := path.Validate(); err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	val, err := NormalizeValue(value)
	if err != nil {
		return err
	}
	node := t.root
	for _, seg := range path {
		node = node.child(seg)
	}
	node.setValue(val)
	return nil
}

// SetString is Set with a dot-delimited path string.
func (t *Tree) SetString(path string, value any) error {
	p, err := ParsePath(path)
	if err != nil {
		return err
	}
	return t.Set(p, value)
}

// Get returns the value stored at path. The second return is false when any
// segment along the path is missing, or when the terminal node exists but
// never had a value written; a stored nil reports (nil, true). An invalid
// path addresses nothing and reports absent.
func (t *Tree) Get(path Path) (any, bool) {
	if path.Validate() != nil {
		return nil, false
	}
	node, ok := t.lookup(path)
	if !ok {
		return nil, false
	}
	return node.Value()
}

// GetString is Get with a dot-delimited path string.
func (t *Tree) GetString(path string) (any, bool) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, false
	}
	return t.Get(p)
}

// Lookup resolves a path to its node without touching values.
func (t *Tree) Lookup(path Path) (*Node, bool) {
	if path.Validate() != nil {
		return nil, false
	}
	return t.lookup(path)
}

func (t *Tree) lookup(path Path) (*Node, bool) {
	node := t.root
	for _, seg := range path {
		c, ok := node.Child(seg)
		if !ok {
			return nil, false
		}
		node = c
	}
	return node, true
}

// Delete removes the node at path together with its entire subtree. Reports
// whether a node was removed; a missing or invalid path leaves the tree
// unchanged and returns false. The root is not addressable and can never be
// deleted.
func (t *Tree) Delete(path Path) bool {
	if path.Validate() != nil {
		return false
	}
	parent := t.root
	if len(path) > 1 {
		p, ok := t.lookup(path[:len(path)-1])
		if !ok {
			return false
		}
		parent = p
	}
	return parent.removeChild(path[len(path)-1])
}

// DeleteString is Delete with a dot-delimited path string.
func (t *Tree) DeleteString(path string) bool {
	p, err := ParsePath(path)
	if err != nil {
		return false
	}
	return t.Delete(p)
}

// Search walks the whole tree and returns the path of every node whose stored
// value is structurally equal to value, in pre-order with children visited in
// insertion order. Nodes with no value never match, even against nil. A value
// outside the storable model matches nothing.
func (t *Tree) Search(value any) []Path {
	needle, err := NormalizeValue(value)
	if err != nil {
		return nil
	}
	var results []Path
	t.Walk(func(path Path, n *Node) {
		if v, ok := n.Value(); ok && valueEqual(v, needle) {
			results = append(results, slices.Clone(path))
		}
	})
	return results
}

// SearchKey returns the path of every node whose own segment name equals
// segment, in the same traversal order as Search. A match at an interior node
// does not stop the descent: deeper nodes with the same name are reported
// independently.
func (t *Tree) SearchKey(segment string) []Path {
	var results []Path
	t.Walk(func(path Path, n *Node) {
		if len(path) > 0 && path[len(path)-1] == segment {
			results = append(results, slices.Clone(path))
		}
	})
	return results
}

// Walk visits every node in pre-order depth-first traversal, children in
// insertion order, starting with the root at the empty path. The path passed
// to fn is shared between calls; callers that retain it must copy.
func (t *Tree) Walk(fn func(path Path, n *Node)) {
	walk(t.root, Path{}, fn)
}

func walk(n *Node, path Path, fn func(Path, *Node)) {
	fn(path, n)
	for _, c := range n.Children() {
		walk(c, append(path, c.Name()), fn)
	}
}

// Stats summarizes the tree shape.
type Stats struct {
	TotalNodes     int  `json:"total_nodes"`
	MaxDepth       int  `json:"max_depth"`
	DirectChildren int  `json:"direct_children"`
	RootHasValue   bool `json:"root_has_value"`
}

// Stats reports node count (root included), the longest root-to-leaf edge
// count, the root's direct child count, and whether the root itself carries a
// value.
func (t *Tree) Stats() Stats {
	_, rootHasValue := t.root.Value()
	return Stats{
		TotalNodes:     t.root.countNodes(),
		MaxDepth:       t.root.depth(),
		DirectChildren: len(t.root.children),
		RootHasValue:   rootHasValue,
	}
}
