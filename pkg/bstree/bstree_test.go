package bstree

import (
	"math/rand"
	"testing"
)

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestInsertSearch(t *testing.T) {
	tree := New()
	for _, k := range []int{5, 3, 8, 1, 4} {
		tree.Insert(k, "")
	}

	if n, ok := tree.Search(4); !ok || n.Key != 4 {
		t.Errorf("Search(4) = (%v, %v), want key 4 found", n, ok)
	}
	if _, ok := tree.Search(99); ok {
		t.Error("Search(99) found absent key")
	}
	if tree.Len() != 5 {
		t.Errorf("Len() = %d, want 5", tree.Len())
	}
}

func TestInsert_UpdateExisting(t *testing.T) {
	tree := New()
	tree.InsertWithPayload(1, "old", "p1")

	tree.Insert(1, "new")
	n, _ := tree.Search(1)
	if n.Label != "new" || n.Payload != "p1" {
		t.Errorf("after Insert update: (%q, %v), want (%q, %v)", n.Label, n.Payload, "new", "p1")
	}

	tree.InsertWithPayload(1, "newer", nil)
	if n.Label != "newer" || n.Payload != nil {
		t.Errorf("after InsertWithPayload(nil): (%q, %v), want (%q, nil)", n.Label, n.Payload, "newer")
	}
	if tree.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tree.Len())
	}
}

func TestRemove(t *testing.T) {
	tree := New()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(k, "")
	}

	if !tree.Remove(4) { // two children: successor 5 moves up
		t.Fatal("Remove(4) = false, want true")
	}
	if tree.root.Key != 5 {
		t.Errorf("root after removing 4 = %d, want successor 5", tree.root.Key)
	}
	if tree.Remove(99) {
		t.Error("Remove(99) = true, want false")
	}
	want := []int{1, 2, 3, 5, 6, 7}
	if got := tree.Keys(); !equalInts(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if tree.Len() != 6 {
		t.Errorf("Len() = %d, want 6", tree.Len())
	}
}

func TestDegenerateChainHeight(t *testing.T) {
	tree := New()
	for k := 1; k <= 15; k++ {
		tree.Insert(k, "")
	}
	if got := tree.Height(); got != 15 {
		t.Errorf("Height() of ascending chain = %d, want 15", got)
	}
}

func TestBalance_ChainOf15(t *testing.T) {
	tree := New()
	for k := 1; k <= 15; k++ {
		tree.Insert(k, "")
	}

	tree.Balance()

	if got := tree.Height(); got != 4 {
		t.Errorf("Height() after Balance = %d, want 4", got)
	}
	want := make([]int, 15)
	for i := range want {
		want[i] = i + 1
	}
	if got := tree.Keys(); !equalInts(got, want) {
		t.Errorf("Keys() after Balance = %v, want 1..15", got)
	}
}

// minimalHeight is ceil(log2(n+1)).
func minimalHeight(n int) int {
	h := 0
	for c := 1; c-1 < n; c <<= 1 {
		h++
	}
	return h
}

func TestBalance_RandomTrees(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range []int{2, 3, 7, 10, 31, 100, 1000} {
		tree := New()
		for _, k := range rng.Perm(n) {
			tree.Insert(k, "")
		}
		before := tree.Keys()

		tree.Balance()

		if got := tree.Keys(); !equalInts(got, before) {
			t.Errorf("n=%d: Balance changed the key sequence", n)
		}
		if got, want := tree.Height(), minimalHeight(n); got != want {
			t.Errorf("n=%d: Height() after Balance = %d, want %d", n, got, want)
		}
	}
}

func TestBalance_Idempotent(t *testing.T) {
	tree := New()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(k, "")
	}
	tree.Balance()
	h := tree.Height()
	tree.Balance()
	if tree.Height() != h {
		t.Errorf("second Balance changed height: %d -> %d", h, tree.Height())
	}
}

func TestBalance_SmallTrees(t *testing.T) {
	empty := New()
	empty.Balance() // must not panic

	one := New()
	one.Insert(1, "only")
	one.Balance()
	if one.Height() != 1 || one.Len() != 1 {
		t.Errorf("single-node tree after Balance: height %d len %d, want 1 and 1", one.Height(), one.Len())
	}
}

func TestBalance_PreservesEntries(t *testing.T) {
	tree := New()
	for k := 1; k <= 10; k++ {
		tree.InsertWithPayload(k, "", k*10)
	}

	tree.Balance()

	for k := 1; k <= 10; k++ {
		n, ok := tree.Search(k)
		if !ok {
			t.Fatalf("Search(%d) not found after Balance", k)
		}
		if n.Payload != k*10 {
			t.Errorf("payload of %d = %v, want %d", k, n.Payload, k*10)
		}
	}
}

func TestTraversalOrders(t *testing.T) {
	tree := New()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(k, "")
	}

	tests := []struct {
		name string
		walk func(func(*Node) bool)
		want []int
	}{
		{"in-order", tree.InOrder, []int{1, 2, 3, 4, 5, 6, 7}},
		{"pre-order", tree.PreOrder, []int{4, 2, 1, 3, 6, 5, 7}},
		{"post-order", tree.PostOrder, []int{1, 3, 2, 5, 7, 6, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int
			tt.walk(func(n *Node) bool {
				got = append(got, n.Key)
				return true
			})
			if !equalInts(got, tt.want) {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestTraversalEarlyStop(t *testing.T) {
	tree := New()
	for k := 1; k <= 100; k++ {
		tree.Insert(k, "")
	}
	visited := 0
	tree.PreOrder(func(*Node) bool {
		visited++
		return visited < 5
	})
	if visited != 5 {
		t.Errorf("visited %d nodes, want 5", visited)
	}
}

func TestDeepChainTraversalDoesNotOverflow(t *testing.T) {
	const n = 200_000
	tree := New()
	// Link the right-only chain directly: inserting ascending keys one by
	// one descends the whole chain each time, O(n²) at this size.
	var prev *Node
	for k := 1; k <= n; k++ {
		node := &Node{Key: k}
		if prev == nil {
			tree.root = node
		} else {
			prev.right = node
		}
		prev = node
	}
	tree.size = n

	count, last := 0, 0
	tree.InOrder(func(nd *Node) bool {
		count++
		last = nd.Key
		return true
	})
	if count != n || last != n {
		t.Errorf("in-order visited %d nodes ending at %d, want %d and %d", count, last, n, n)
	}
}
