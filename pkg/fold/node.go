package fold

import "github.com/hashmap-kz/treefy/pkg/tree"

// Node is a foldable tree node. The root node has no key.
type Node struct {
	Key *Key

	children []*Node
	byValue  map[string]*Node
}

func NewRoot() *Node {
	return &Node{byValue: make(map[string]*Node)}
}

// Decorate copies a string-keyed tree into a foldable one, wrapping every
// key in a closed Key without index.
func Decorate(t *tree.Node[string]) *Node {
	root := NewRoot()
	decorate(root, t)
	return root
}

func decorate(dst *Node, src *tree.Node[string]) {
	src.Each(func(key string, child *tree.Node[string]) {
		decorate(dst.Add(NewKey(key)), child)
	})
}

// Add appends a child for key. If a child with an equal key exists it is
// returned instead and key is dropped.
func (n *Node) Add(key *Key) *Node {
	if existing, ok := n.byValue[key.Value]; ok {
		return existing
	}
	if n.byValue == nil {
		n.byValue = make(map[string]*Node)
	}
	child := &Node{Key: key, byValue: make(map[string]*Node)}
	n.children = append(n.children, child)
	n.byValue[key.Value] = child
	return child
}

// Child looks a child up by key value, whatever its status or index.
func (n *Node) Child(value string) (*Node, bool) {
	child, ok := n.byValue[value]
	return child, ok
}

// Children returns the children in insertion order.
func (n *Node) Children() []*Node {
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	return children
}

func (n *Node) Len() int {
	return len(n.children)
}

func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

func (n *Node) IsRoot() bool {
	return n.Key == nil
}
