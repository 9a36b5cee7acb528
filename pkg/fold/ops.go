package fold

// Reindex assigns visit indices, starting at start, to the branch keys of
// the visible tree in depth-first order, and returns the next unused index.
// Leaves are skipped and the subtrees of closed branches are not entered,
// so their indices keep whatever value a previous pass left. It has to run
// before every render since any status change renumbers the rows after it.
func Reindex(root *Node, start int) int {
	index := start
	walk(root, 1, whenOpen, func(n *Node, _ int) bool {
		if n.IsLeaf() {
			return true
		}
		n.Key.Index = index
		index++
		return true
	})
	return index
}

// Find returns the visible branch carrying index, or nil.
func Find(root *Node, index int) *Node {
	var found *Node
	walk(root, 1, whenOpen, func(n *Node, _ int) bool {
		if !n.IsLeaf() && n.Key.Index == index {
			found = n
			return false
		}
		return true
	})
	return found
}

// ToggleStatus flips the status of the visible branch carrying index.
// An index matching no visible branch is a no-op. The return value reports
// whether a key was toggled.
func ToggleStatus(root *Node, index int) bool {
	n := Find(root, index)
	if n == nil {
		return false
	}
	n.Key.Toggle()
	return true
}

// ExpandAll opens every branch of the tree, visible or not.
func ExpandAll(root *Node) {
	setAll(root, Open)
}

// CollapseAll closes every branch of the tree, visible or not.
func CollapseAll(root *Node) {
	setAll(root, Closed)
}

func setAll(root *Node, status Status) {
	Walk(root, func(n *Node, _ int) {
		if !n.IsLeaf() {
			n.Key.Status = status
		}
	})
}

// ExpandSingleChildNodes opens the only child of every node that has
// exactly one, so chains without a real choice are drilled down already.
// Leaves keep their status.
func ExpandSingleChildNodes(root *Node) {
	openOnlyChild(root)
	Walk(root, func(n *Node, _ int) {
		openOnlyChild(n)
	})
}

func openOnlyChild(n *Node) {
	if n.Len() != 1 {
		return
	}
	if only := n.children[0]; !only.IsLeaf() {
		only.Key.Expand()
	}
}
