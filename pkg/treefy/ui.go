package treefy

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/hashmap-kz/treefy/pkg/fold"
)

type UIOptions struct {
	ExpandAllKey rune
	QuitKey      rune
}

type cmdInputPurpose string

var cmdInputPurposeSearch cmdInputPurpose = "search"

type UIState struct {
	app             *tview.Application
	root            *fold.Node
	rootNode        *tview.TreeNode
	treeView        *tview.TreeView
	detailsView     *tview.TextView
	viewsLayout     *tview.Flex
	mainLayout      *tview.Flex
	cmdInput        *tview.InputField
	cmdInputIsOn    bool
	cmdInputPurpose cmdInputPurpose
	treeLinks       *TreeLinks
	opts            UIOptions
}

// NewUI mirrors the foldable tree in a tview tree view. The foldable tree
// stays the source of truth: view nodes are expanded exactly when their key
// is open.
func NewUI(root *fold.Node, opts UIOptions) *UIState {
	// Create the root tree node
	rootNode := tview.NewTreeNode("Paths").
		SetReference(newTreeData(root)).
		SetExpanded(true)
	populateNode(rootNode, root)

	// Create the help menu (top)
	helpMenu := tview.NewTextView()
	helpMenu.SetDynamicColors(true)
	helpMenu.SetTextAlign(tview.AlignLeft)
	helpMenu.SetText(getHelpMenuContent(opts))
	helpMenu.SetBorder(true)

	// Create a main tree view (lhs)
	treeView := tview.NewTreeView()
	treeView.SetRoot(rootNode)
	treeView.SetCurrentNode(rootNode)
	treeView.SetGraphicsColor(tcell.ColorWhite)
	treeView.SetTitle("Tree")
	treeView.SetBorder(true)

	// Create a details view (rhs)
	detailsView := tview.NewTextView()
	detailsView.SetDynamicColors(true)
	detailsView.SetBorder(true)
	detailsView.SetTitle("Details")
	detailsView.SetScrollable(true)
	detailsView.SetWrap(true)
	detailsView.SetTextColor(tcell.ColorLightGray)

	viewsLayout := tview.NewFlex()
	viewsLayout.AddItem(treeView, 0, 2, true)
	viewsLayout.AddItem(detailsView, 0, 1, false)

	mainLayout := tview.NewFlex()
	mainLayout.SetDirection(tview.FlexRow)
	mainLayout.AddItem(helpMenu, 4, 1, false)
	mainLayout.AddItem(viewsLayout, 0, 2, true)

	// Create the input field (bottom, hidden by default)
	cmdInput := tview.NewInputField()
	cmdInput.SetFieldWidth(32)
	cmdInput.SetBorder(true)
	cmdInput.SetFieldTextColor(tcell.ColorLightGray)
	cmdInput.SetBackgroundColor(tcell.ColorBlack)
	cmdInput.SetLabelColor(tcell.ColorYellow)
	cmdInput.SetFieldBackgroundColor(tcell.ColorBlack)

	// parent/child relationships (used for step back and details)
	treeLinks := NewTreeLinks()
	treeLinks.FillLinks(rootNode)

	s := &UIState{
		app:         tview.NewApplication(),
		root:        root,
		rootNode:    rootNode,
		treeView:    treeView,
		detailsView: detailsView,
		viewsLayout: viewsLayout,
		mainLayout:  mainLayout,
		cmdInput:    cmdInput,
		treeLinks:   treeLinks,
		opts:        opts,
	}
	s.setupListeners()
	resetNodeColors(rootNode)
	s.sync()
	return s
}

func (s *UIState) Run() error {
	if err := s.app.SetRoot(s.mainLayout, true).Run(); err != nil {
		return fmt.Errorf("error running tree view: %w", err)
	}
	return nil
}

func populateNode(parent *tview.TreeNode, n *fold.Node) {
	for _, c := range n.Children() {
		childNode := tview.NewTreeNode(tview.Escape(c.Key.Value)).SetReference(newTreeData(c))
		parent.AddChild(childNode)
		populateNode(childNode, c)
	}
}

// sync renumbers the visible branches and copies fold state and labels
// onto the view nodes.
func (s *UIState) sync() {
	fold.Reindex(s.root, 1)
	syncNode(s.rootNode)
}

func syncNode(node *tview.TreeNode) {
	data, err := extractTreeData(node)
	if err != nil {
		return
	}
	if !data.node.IsRoot() {
		node.SetText(nodeLabel(data.node))
		node.SetExpanded(data.node.Key.IsOpen())
	}
	for _, child := range node.GetChildren() {
		syncNode(child)
	}
}

func nodeLabel(n *fold.Node) string {
	if n.IsLeaf() {
		return fmt.Sprintf("%s %s", markerLeaf, tview.Escape(n.Key.Value))
	}
	return fmt.Sprintf("%d. %s %s", n.Key.Index, marker(n.Key), tview.Escape(n.Key.Value))
}

func (s *UIState) details(node *tview.TreeNode) string {
	data, err := extractTreeData(node)
	if err != nil || data.node.IsRoot() {
		return ""
	}
	path := tview.Escape(s.treeLinks.Path(node))
	if data.IsNodeType(nodeTypeLeaf) {
		return fmt.Sprintf("%s\n\nleaf", path)
	}
	return fmt.Sprintf("%s\n\nindex:    %d\nstatus:   %s\nchildren: %d",
		path, data.node.Key.Index, data.node.Key.Status, data.node.Len())
}

func getHelpMenuContent(opts UIOptions) string {
	return strings.TrimSpace(fmt.Sprintf(`
[yellow]<ENTER>[-] Toggle | [yellow]<%c>[-] Expand all | [yellow]</term>[-] Search      | [yellow]<jk>[-]     Navigate |
[yellow]<%c>[-]     Quit   | [yellow]<TAB>[-] Focus       | [yellow]<ESC>[-]   Go to parent | [yellow]<ARROWS>[-] Navigate |
`, opts.ExpandAllKey, opts.QuitKey))
}
