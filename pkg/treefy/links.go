package treefy

import (
	"strings"

	"github.com/rivo/tview"
)

type TreeLinks struct {
	// key=child, value=parent
	ParentMap map[*tview.TreeNode]*tview.TreeNode
}

func NewTreeLinks() *TreeLinks {
	return &TreeLinks{
		ParentMap: make(map[*tview.TreeNode]*tview.TreeNode),
	}
}

func (t *TreeLinks) FillLinks(root *tview.TreeNode) {
	for _, c := range root.GetChildren() {
		t.ParentMap[c] = root
		t.FillLinks(c)
	}
}

// Path joins the key values from the top of the tree down to node.
func (t *TreeLinks) Path(node *tview.TreeNode) string {
	var parts []string
	for cur := node; cur != nil; cur = t.ParentMap[cur] {
		data, err := extractTreeData(cur)
		if err != nil || data.node.IsRoot() {
			break
		}
		parts = append(parts, data.node.Key.Value)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "")
}
