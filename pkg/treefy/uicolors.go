package treefy

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var matchColor = tcell.ColorRed

// Helper function to reset all node colors
func resetNodeColors(node *tview.TreeNode) {
	if node == nil {
		return
	}
	data, err := extractTreeData(node)
	if err != nil {
		return
	}
	data.matched = false
	switch data.nodeType {
	case nodeTypeRoot:
		node.SetColor(tcell.ColorYellow)
	case nodeTypeBranch:
		node.SetColor(tcell.ColorGreen)
	case nodeTypeLeaf:
		node.SetColor(tcell.ColorLightGray)
	default:
		node.SetColor(tcell.ColorLightGray)
	}

	for _, child := range node.GetChildren() {
		resetNodeColors(child)
	}
}
