package fold

// walk visits the descendants of node depth-first in child order. visit runs
// on a child before its subtree and returns false to stop the whole walk;
// descend decides whether the child's subtree is entered. Top-level
// children have depth 1.
func walk(node *Node, depth int, descend func(*Node) bool, visit func(n *Node, depth int) bool) bool {
	for _, child := range node.children {
		if !visit(child, depth) {
			return false
		}
		if child.IsLeaf() || !descend(child) {
			continue
		}
		if !walk(child, depth+1, descend, visit) {
			return false
		}
	}
	return true
}

func whenOpen(n *Node) bool {
	return n.Key.IsOpen()
}

func always(*Node) bool {
	return true
}

// Line is one visible row of a tree.
type Line struct {
	Node  *Node
	Depth int
}

// Visible lists the rows a renderer shows: every key whose ancestors are all
// open, in depth-first order.
func Visible(root *Node) []Line {
	var lines []Line
	walk(root, 1, whenOpen, func(n *Node, depth int) bool {
		lines = append(lines, Line{Node: n, Depth: depth})
		return true
	})
	return lines
}

// Walk visits every node of the tree regardless of fold state.
func Walk(root *Node, fn func(n *Node, depth int)) {
	walk(root, 1, always, func(n *Node, depth int) bool {
		fn(n, depth)
		return true
	})
}
