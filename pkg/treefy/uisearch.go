package treefy

import (
	"strings"

	"github.com/rivo/tview"
)

// highlightMatchingNodes colors every node whose key contains searchTerm and
// returns how many matched. Fold state is left alone, so matches under
// closed branches stay hidden until the user opens them.
func highlightMatchingNodes(root *tview.TreeNode, searchTerm string) int {
	resetNodeColors(root)
	if searchTerm == "" {
		return 0
	}
	return searchAndHighlight(root, strings.ToLower(searchTerm))
}

func searchAndHighlight(node *tview.TreeNode, searchTerm string) int {
	if node == nil {
		return 0
	}
	data, err := extractTreeData(node)
	if err != nil {
		return 0
	}

	matches := 0
	if data.IsNodeType(nodeTypeBranch, nodeTypeLeaf) &&
		strings.Contains(strings.ToLower(data.node.Key.Value), searchTerm) {
		data.matched = true
		node.SetColor(matchColor)
		matches++
	}

	for _, child := range node.GetChildren() {
		matches += searchAndHighlight(child, searchTerm)
	}
	return matches
}
