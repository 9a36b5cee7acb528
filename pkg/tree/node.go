package tree

// Node is used for construct a tree-structure from path sequences.
// Children are kept in insertion order, so the same input always
// produces the same traversal order.
type Node[K comparable] struct {
	keys     []K
	children map[K]*Node[K]
}

func NewNode[K comparable]() *Node[K] {
	return &Node[K]{
		children: make(map[K]*Node[K]),
	}
}

// Build inserts every sequence into a new tree.
func Build[K comparable](seqs [][]K) *Node[K] {
	root := NewNode[K]()
	for _, seq := range seqs {
		root.Insert(seq...)
	}
	return root
}

// Insert walks the sequence from the node, creating every missing node
// along the way, and returns the node reached by the last element.
// An empty sequence returns nil and changes nothing.
func (node *Node[K]) Insert(seq ...K) *Node[K] {
	if len(seq) == 0 {
		return nil
	}
	current := node
	for _, key := range seq {
		child, exists := current.children[key]
		if !exists {
			child = NewNode[K]()
			current.Set(key, child)
		}
		current = child
	}
	return current
}

// Set stores child under key. A new key is appended to the order,
// an existing one keeps its position.
func (node *Node[K]) Set(key K, child *Node[K]) {
	if node.children == nil {
		node.children = make(map[K]*Node[K])
	}
	if _, exists := node.children[key]; !exists {
		node.keys = append(node.keys, key)
	}
	node.children[key] = child
}

func (node *Node[K]) Child(key K) (*Node[K], bool) {
	child, ok := node.children[key]
	return child, ok
}

// Keys returns a copy of the child keys in insertion order.
func (node *Node[K]) Keys() []K {
	keys := make([]K, len(node.keys))
	copy(keys, node.keys)
	return keys
}

func (node *Node[K]) Len() int {
	return len(node.keys)
}

func (node *Node[K]) IsLeaf() bool {
	return len(node.keys) == 0
}

// First returns the first inserted child.
func (node *Node[K]) First() (K, *Node[K], bool) {
	if len(node.keys) == 0 {
		var zero K
		return zero, nil, false
	}
	k := node.keys[0]
	return k, node.children[k], true
}

// IsSingleLeaf reports whether the node holds exactly one child and that child is a leaf.
func (node *Node[K]) IsSingleLeaf() bool {
	_, child, ok := node.First()
	return ok && node.Len() == 1 && child.IsLeaf()
}

// Each calls fn for every child in insertion order.
func (node *Node[K]) Each(fn func(key K, child *Node[K])) {
	for _, k := range node.keys {
		fn(k, node.children[k])
	}
}

// Equal compares two trees by keys and shape. Child order is ignored.
func (node *Node[K]) Equal(other *Node[K]) bool {
	if node == nil || other == nil {
		return node == other
	}
	if node.Len() != other.Len() {
		return false
	}
	for _, k := range node.keys {
		o, ok := other.children[k]
		if !ok || !node.children[k].Equal(o) {
			return false
		}
	}
	return true
}
