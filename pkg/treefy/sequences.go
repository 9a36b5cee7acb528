package treefy

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// SplitPath turns a slash-delimited path into segments. Every segment but
// the last keeps a trailing slash to mark it as a directory, empty segments
// are dropped:
//
//	"a/b/c"  -> [a/ b/ c]
//	"a/b/"   -> [a/ b/]
//	"/a"     -> [/ a]
func SplitPath(line string) []string {
	parts := strings.Split(strings.TrimSpace(line), "/")
	seq := make([]string, 0, len(parts))
	for i, p := range parts {
		if i < len(parts)-1 {
			p += "/"
		}
		if p != "" {
			seq = append(seq, p)
		}
	}
	return seq
}

// ReadSequences reads newline-delimited paths and splits each of them.
// Blank lines are skipped.
func ReadSequences(r io.Reader) ([][]string, error) {
	var seqs [][]string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		seq := SplitPath(scanner.Text())
		if len(seq) == 0 {
			continue
		}
		seqs = append(seqs, seq)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading paths: %w", err)
	}
	return seqs, nil
}
