package treefy

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hashmap-kz/treefy/pkg/fold"
	"github.com/hashmap-kz/treefy/pkg/tree"
)

type JoinMode string

var (
	JoinNone      JoinMode = "none"
	JoinShallow   JoinMode = "shallow"
	JoinRecursive JoinMode = "recursive"
)

func ParseJoinMode(s string) (JoinMode, error) {
	switch m := JoinMode(strings.ToLower(strings.TrimSpace(s))); m {
	case JoinNone, JoinShallow, JoinRecursive:
		return m, nil
	default:
		return "", fmt.Errorf("unknown join mode: %q", s)
	}
}

type BuildOptions struct {
	Join       JoinMode
	AutoExpand bool
}

// Prepare turns path sequences into a foldable tree ready for a session:
// build, join shared paths, decorate, then drill down single-child chains.
func Prepare(seqs [][]string, opts BuildOptions) *fold.Node {
	raw := tree.Build(seqs)
	slog.Debug("tree built", slog.Int("sequences", len(seqs)), slog.Int("roots", raw.Len()))

	switch opts.Join {
	case JoinShallow:
		raw = tree.JoinSharedPaths(raw, joinSegments)
	case JoinRecursive:
		raw = tree.JoinSharedPathsRecursive(raw, joinSegments)
	}

	root := fold.Decorate(raw)
	if opts.AutoExpand {
		fold.ExpandSingleChildNodes(root)
	}
	slog.Debug("tree prepared", slog.String("join", string(opts.Join)), slog.Int("roots", root.Len()))
	return root
}

func joinSegments(path []string) string {
	return strings.Join(path, "")
}
