package tree

import (
	"reflect"
	"testing"
)

// n builds an int-keyed tree from alternating key, child arguments.
func n(kv ...any) *Node[int] {
	node := NewNode[int]()
	for i := 0; i < len(kv); i += 2 {
		node.Set(kv[i].(int), kv[i+1].(*Node[int]))
	}
	return node
}

func TestNewNode(t *testing.T) {
	node := NewNode[string]()

	if node == nil {
		t.Fatal("NewNode() returned nil")
	}
	if !node.IsLeaf() || node.Len() != 0 {
		t.Fatalf("Expected empty node, got %d children", node.Len())
	}
	if _, _, ok := node.First(); ok {
		t.Fatal("Expected First() to report no child")
	}
}

func TestBuild_Empty(t *testing.T) {
	got := Build[int](nil)
	if !got.Equal(n()) {
		t.Fatalf("Expected empty tree, got %d children", got.Len())
	}
}

func TestBuild_SingleElement(t *testing.T) {
	got := Build([][]int{{1}})
	if !got.Equal(n(1, n())) {
		t.Fatalf("Expected {1: {}}, got keys %v", got.Keys())
	}
}

func TestBuild_TwoElements(t *testing.T) {
	got := Build([][]int{{1, 2}})
	if !got.Equal(n(1, n(2, n()))) {
		t.Fatal("Expected {1: {2: {}}}")
	}
}

func TestBuild_SeparateRoots(t *testing.T) {
	got := Build([][]int{{1, 2}, {3}})
	if !got.Equal(n(1, n(2, n()), 3, n())) {
		t.Fatal("Expected {1: {2: {}}, 3: {}}")
	}
}

func TestBuild_SharedPrefix(t *testing.T) {
	got := Build([][]int{{1, 2, 3}, {1, 2, 4}})

	one, exists := got.Child(1)
	if !exists {
		t.Fatal("Expected child 1 to exist")
	}
	two, exists := one.Child(2)
	if !exists {
		t.Fatal("Expected child 2 under 1 to exist")
	}
	if two.Len() != 2 {
		t.Fatalf("Expected 2 children under 2, got %d", two.Len())
	}
}

func TestBuild_DuplicateIsIdempotent(t *testing.T) {
	once := Build([][]int{{1, 2}})
	twice := Build([][]int{{1, 2}, {1, 2}})
	if !once.Equal(twice) {
		t.Fatal("Expected duplicate insertion to change nothing")
	}
	if got := twice.Keys(); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("Expected keys [1], got %v", got)
	}
}

func TestBuild_PreservesInsertionOrder(t *testing.T) {
	got := Build([][]string{{"z"}, {"a", "y"}, {"m"}, {"a", "b"}, {"z"}})

	if keys := got.Keys(); !reflect.DeepEqual(keys, []string{"z", "a", "m"}) {
		t.Fatalf("Expected root order [z a m], got %v", keys)
	}
	a, _ := got.Child("a")
	if keys := a.Keys(); !reflect.DeepEqual(keys, []string{"y", "b"}) {
		t.Fatalf("Expected order [y b] under a, got %v", keys)
	}
}

func TestInsert_ExistingLeafBecomesBranch(t *testing.T) {
	node := NewNode[string]()
	leaf := node.Insert("metadata")
	if !leaf.IsLeaf() {
		t.Fatal("Expected freshly inserted node to be a leaf")
	}

	name := node.Insert("metadata", "name")
	if leaf.Len() != 1 {
		t.Fatalf("Expected 1 child under 'metadata', got %d", leaf.Len())
	}
	if got, _ := leaf.Child("name"); got != name {
		t.Fatal("Expected Insert to return the node stored under 'name'")
	}
}

func TestInsert_EmptySequence(t *testing.T) {
	node := NewNode[string]()
	if got := node.Insert(); got != nil {
		t.Fatal("Expected nil for empty sequence")
	}
	if node.Len() != 0 {
		t.Fatalf("Expected no children for empty sequence, got %d", node.Len())
	}
}

func TestKeys_ReturnsCopy(t *testing.T) {
	node := Build([][]int{{1}, {2}})
	keys := node.Keys()
	keys[0] = 42

	if got := node.Keys(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("Expected keys to stay [1 2], got %v", got)
	}
}

func TestSet_ExistingKeyKeepsPosition(t *testing.T) {
	node := Build([][]int{{1}, {2}, {3}})
	node.Set(2, n(5, n()))

	if got := node.Keys(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("Expected keys [1 2 3], got %v", got)
	}
	two, _ := node.Child(2)
	if two.Len() != 1 {
		t.Fatalf("Expected replaced child with 1 key, got %d", two.Len())
	}
}

func TestIsSingleLeaf(t *testing.T) {
	tests := []struct {
		name string
		node *Node[int]
		want bool
	}{
		{name: "empty", node: n(), want: false},
		{name: "single leaf", node: n(1, n()), want: true},
		{name: "single branch", node: n(1, n(2, n())), want: false},
		{name: "two leaves", node: n(1, n(), 2, n()), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsSingleLeaf(); got != tt.want {
				t.Fatalf("IsSingleLeaf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqual_IgnoresOrder(t *testing.T) {
	a := n(1, n(), 2, n(3, n()))
	b := n(2, n(3, n()), 1, n())
	if !a.Equal(b) {
		t.Fatal("Expected trees with the same shape to be equal")
	}
	if a.Equal(n(1, n(), 2, n())) {
		t.Fatal("Expected trees with different depth to differ")
	}
}
