package treefy

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/hashmap-kz/treefy/pkg/fold"
)

type TreeDataNodeType string

var (
	nodeTypeRoot   TreeDataNodeType = "root"
	nodeTypeBranch TreeDataNodeType = "branch"
	nodeTypeLeaf   TreeDataNodeType = "leaf"
)

// TreeData is used for store custom properties in *tview.TreeNode references
type TreeData struct {
	nodeType TreeDataNodeType

	// foldable node mirrored by the view node
	node *fold.Node

	// highlighted by the last search
	matched bool
}

func newTreeData(n *fold.Node) *TreeData {
	switch {
	case n.IsRoot():
		return &TreeData{nodeType: nodeTypeRoot, node: n}
	case n.IsLeaf():
		return &TreeData{nodeType: nodeTypeLeaf, node: n}
	default:
		return &TreeData{nodeType: nodeTypeBranch, node: n}
	}
}

func extractTreeData(node *tview.TreeNode) (*TreeData, error) {
	if data, ok := node.GetReference().(*TreeData); ok {
		return data, nil
	}
	return nil, fmt.Errorf("unexpected. get-ref failed: %v", node)
}

func (d *TreeData) IsNodeType(nodeTypes ...TreeDataNodeType) bool {
	for _, t := range nodeTypes {
		if d.nodeType == t {
			return true
		}
	}
	return false
}
