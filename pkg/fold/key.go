// Package fold decorates a path tree with per-node fold state and visit
// indices, and implements the operations of an interactive tree session.
//
// A session keeps a single *Node for its whole lifetime and mutates it in
// place. None of the operations are safe for concurrent use; callers sharing
// a tree between goroutines must guard every call with one lock.
package fold

import "fmt"

type Status int

const (
	Closed Status = iota
	Open
)

func (s Status) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// NoIndex marks keys which are not selectable: leaves, and branches
// which were never visible.
const NoIndex = -1

// Key is a foldable tree key. Identity is defined by Value alone, Status
// and Index are mutable decoration.
type Key struct {
	Value  string
	Status Status
	Index  int
}

func NewKey(value string) *Key {
	return &Key{Value: value, Status: Closed, Index: NoIndex}
}

// Equal compares keys by value, ignoring fold state and index.
func (k *Key) Equal(other *Key) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.Value == other.Value
}

func (k *Key) Expand() {
	k.Status = Open
}

func (k *Key) Collapse() {
	k.Status = Closed
}

func (k *Key) Toggle() {
	if k.Status == Open {
		k.Status = Closed
		return
	}
	k.Status = Open
}

func (k *Key) IsOpen() bool {
	return k.Status == Open
}

func (k *Key) String() string {
	return k.Value
}

func (k *Key) GoString() string {
	return fmt.Sprintf("fold.Key(%q, %s, %d)", k.Value, k.Status, k.Index)
}
