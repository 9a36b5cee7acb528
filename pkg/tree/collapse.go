package tree

// JoinFunc renders a run of keys as a single key.
type JoinFunc[K comparable] func(path []K) K

// Simplify removes the longest chain of single-child nodes from the root,
// preserving the leaves. It returns the remaining subtree and the keys consumed.
//
//	{1: {2: {3: {}, 4: {}}}} -> ({3: {}, 4: {}}, [1 2])
//	{1: {}}                  -> ({1: {}}, [])
func Simplify[K comparable](node *Node[K]) (*Node[K], []K) {
	common := []K{}
	current := node
	for current.Len() == 1 {
		key, child, _ := current.First()
		if child.IsLeaf() {
			break
		}
		common = append(common, key)
		current = child
	}
	return current, common
}

// JoinSharedPaths strips the common root chain and folds it into every
// remaining top-level key with join. Only the top level is collapsed;
// subtrees are carried over untouched. Empty trees and single leaves are
// returned as is.
func JoinSharedPaths[K comparable](node *Node[K], join JoinFunc[K]) *Node[K] {
	if node.IsLeaf() || node.IsSingleLeaf() {
		return node
	}

	rest, common := Simplify(node)
	joined := NewNode[K]()
	rest.Each(func(key K, child *Node[K]) {
		path := make([]K, 0, len(common)+1)
		path = append(path, common...)
		path = append(path, key)
		joined.Set(join(path), child)
	})
	return joined
}

// JoinSharedPathsRecursive applies JoinSharedPaths at the top level and then
// collapses every nested run of single-child nodes into the key that starts it:
// x/ -> y/ -> f becomes x/y/f, while a node with several children stays a
// grouping key. Top-level keys are exactly those of JoinSharedPaths.
func JoinSharedPathsRecursive[K comparable](node *Node[K], join JoinFunc[K]) *Node[K] {
	top := JoinSharedPaths(node, join)
	joined := NewNode[K]()
	top.Each(func(key K, child *Node[K]) {
		joined.Set(key, joinChildren(child, join))
	})
	return joined
}

func joinChildren[K comparable](node *Node[K], join JoinFunc[K]) *Node[K] {
	joined := NewNode[K]()
	node.Each(func(key K, child *Node[K]) {
		path := []K{key}
		current := child
		for current.Len() == 1 {
			next, grandchild, _ := current.First()
			path = append(path, next)
			current = grandchild
		}
		joined.Set(join(path), joinChildren(current, join))
	})
	return joined
}
