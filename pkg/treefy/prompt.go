package treefy

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hashmap-kz/treefy/pkg/fold"
)

const promptText = "Select node to toggle: "

type PromptOptions struct {
	ExpandAllToken string
	QuitToken      string
}

// Prompt is the line based session: render, read a selection, apply it.
type Prompt struct {
	root *fold.Node
	in   *bufio.Scanner
	out  io.Writer
	opts PromptOptions
}

func NewPrompt(root *fold.Node, in io.Reader, out io.Writer, opts PromptOptions) *Prompt {
	return &Prompt{
		root: root,
		in:   bufio.NewScanner(in),
		out:  out,
		opts: opts,
	}
}

// Run loops until the quit token or the end of input.
func (p *Prompt) Run() error {
	if _, err := fmt.Fprintln(p.out); err != nil {
		return err
	}
	for {
		fold.Reindex(p.root, 1)
		if err := Render(p.out, p.root); err != nil {
			return fmt.Errorf("error rendering tree: %w", err)
		}
		if _, err := fmt.Fprint(p.out, promptText); err != nil {
			return err
		}
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return fmt.Errorf("error reading selection: %w", err)
			}
			_, err := fmt.Fprintln(p.out)
			return err
		}
		if p.Handle(p.in.Text()) {
			return nil
		}
	}
}

// Handle applies one selection and reports whether the session is over.
// Only the expand-all token and numbers change the tree; numbers not shown
// on screen are ignored.
func (p *Prompt) Handle(choice string) (quit bool) {
	choice = strings.TrimSpace(choice)
	switch {
	case choice == "":
		return false
	case choice == p.opts.QuitToken:
		slog.Debug("quit requested")
		return true
	case choice == p.opts.ExpandAllToken:
		slog.Debug("expand all")
		fold.ExpandAll(p.root)
		return false
	}

	index, err := strconv.Atoi(choice)
	if err != nil {
		slog.Warn("invalid selection", slog.String("choice", choice))
		fmt.Fprintf(p.out, "invalid selection %q, enter a node number, %q to expand all or %q to quit\n",
			choice, p.opts.ExpandAllToken, p.opts.QuitToken)
		return false
	}
	if !fold.ToggleStatus(p.root, index) {
		slog.Debug("no node for selection", slog.Int("index", index))
	}
	return false
}
