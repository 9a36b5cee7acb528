package treefy

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashmap-kz/treefy/pkg/fold"
)

const (
	markerOpen   = "-"
	markerClosed = "+"
	markerLeaf   = "*"
)

// Render prints the visible rows of the tree. Branches carry their visit
// index and a fold marker, leaves are bulleted:
//
//	  1.    - src/
//	  2.      + pkg/
//	            * main.go
//
// Indices are whatever the last fold.Reindex assigned.
func Render(w io.Writer, root *fold.Node) error {
	for _, line := range fold.Visible(root) {
		if err := renderLine(w, line); err != nil {
			return err
		}
	}
	return nil
}

func renderLine(w io.Writer, line fold.Line) error {
	indent := strings.Repeat(" ", line.Depth*2)
	key := line.Node.Key
	var err error
	if line.Node.IsLeaf() {
		_, err = fmt.Fprintf(w, "     %s %s %s\n", indent, markerLeaf, key.Value)
	} else {
		_, err = fmt.Fprintf(w, "%3d. %s %s %s\n", key.Index, indent, marker(key), key.Value)
	}
	return err
}

func marker(k *fold.Key) string {
	if k.IsOpen() {
		return markerOpen
	}
	return markerClosed
}

// Dump prints the whole tree, ignoring fold state.
func Dump(w io.Writer, root *fold.Node) error {
	var err error
	fold.Walk(root, func(n *fold.Node, depth int) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s %s\n", strings.Repeat("-", depth*2), n.Key.Value)
	})
	return err
}
