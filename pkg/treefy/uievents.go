package treefy

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/hashmap-kz/treefy/pkg/fold"
)

func (s *UIState) setupListeners() {
	s.app.SetInputCapture(s.handleAppKey)
	s.treeView.SetSelectedFunc(s.toggleNode)
	s.treeView.SetChangedFunc(func(node *tview.TreeNode) {
		if node == nil {
			return
		}
		s.detailsView.SetText(s.details(node))
	})
	s.treeView.SetInputCapture(s.handleTreeKey)
	s.detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyTab {
			s.app.SetFocus(s.treeView)
			return nil
		}
		return event
	})
	s.cmdInput.SetDoneFunc(s.handleCmdDone)
}

// toggleNode flips a branch by its visit index, the same way a numeric
// selection does in the prompt.
func (s *UIState) toggleNode(node *tview.TreeNode) {
	if node == nil {
		return
	}
	data, err := extractTreeData(node)
	if err != nil {
		slog.Error("toggle failed", slog.Any("err", err))
		return
	}
	if !data.IsNodeType(nodeTypeBranch) {
		return
	}
	index := data.node.Key.Index
	if !fold.ToggleStatus(s.root, index) {
		slog.Debug("no node for selection", slog.Int("index", index))
		return
	}
	slog.Debug("toggled", slog.Int("index", index), slog.String("key", data.node.Key.Value))
	s.sync()
	s.detailsView.SetText(s.details(node))
}

func (s *UIState) expandAll() {
	fold.ExpandAll(s.root)
	s.sync()
}

func (s *UIState) handleTreeKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyTab {
		s.app.SetFocus(s.detailsView)
		return nil
	}
	if event.Key() == tcell.KeyEscape {
		cur := s.treeView.GetCurrentNode()
		if parent, ok := s.treeLinks.ParentMap[cur]; ok {
			s.treeView.SetCurrentNode(parent)
			s.detailsView.SetText(s.details(parent))
		}
		return nil
	}
	return event
}

func (s *UIState) handleAppKey(event *tcell.EventKey) *tcell.EventKey {
	if s.cmdInputIsOn || event.Key() != tcell.KeyRune {
		return event
	}
	switch event.Rune() {
	case '/':
		s.cmdInput.SetLabel("Search: ")
		s.cmdInputIsOn = true
		s.cmdInputPurpose = cmdInputPurposeSearch
		s.mainLayout.AddItem(s.cmdInput, 3, 1, true)
		s.app.SetFocus(s.cmdInput)
		return nil
	case s.opts.ExpandAllKey:
		s.expandAll()
		return nil
	case s.opts.QuitKey:
		s.app.Stop()
		return nil
	}
	return event
}

func (s *UIState) handleCmdDone(key tcell.Key) {
	if key != tcell.KeyEnter && key != tcell.KeyEscape {
		return
	}
	if key == tcell.KeyEnter && s.cmdInputPurpose == cmdInputPurposeSearch {
		term := s.cmdInput.GetText()
		matches := highlightMatchingNodes(s.rootNode, term)
		if term != "" {
			s.detailsView.SetText(fmt.Sprintf("%d match(es) for %q", matches, term))
		}
	}
	s.cmdInput.SetText("")
	s.cmdInputIsOn = false
	s.mainLayout.RemoveItem(s.cmdInput)
	s.app.SetFocus(s.treeView)
}
