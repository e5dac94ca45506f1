package bstree

// Balance reshapes the tree into minimal height using the Day–Stout–Warren
// algorithm. Node count is taken from an in-order walk; trees with at most
// one node are left untouched. The in-order key sequence is invariant under
// the transform.
func (t *Tree) Balance() {
	n := 0
	t.InOrder(func(*Node) bool {
		n++
		return true
	})
	if n <= 1 {
		return
	}

	t.treeToVine()

	// m is the largest 2^k - 1 not exceeding n: the node count of the
	// biggest perfectly filled tree that fits.
	m := 1
	for m <= n {
		m <<= 1
	}
	m = m>>1 - 1

	// One pass collapses the n-m nodes that overflow the perfect shape,
	// then each further pass halves the remaining spine.
	t.compress(n - m)
	for m > 1 {
		m >>= 1
		t.compress(m)
	}
}

// treeToVine flattens the tree into a right-only chain with successive
// right rotations, preserving in-order key order. A synthetic head node
// anchors the chain; the trailing pointer only advances past nodes whose
// left subtree is already empty, so every rotation strictly shrinks the
// remaining left weight and the whole pass is O(n).
func (t *Tree) treeToVine() {
	head := &Node{right: t.root}
	tail := head
	rest := tail.right
	for rest != nil {
		if rest.left == nil {
			tail = rest
			rest = rest.right
			continue
		}
		// Right rotation at rest, re-attached below tail.
		left := rest.left
		rest.left = left.right
		left.right = rest
		tail.right = left
		rest = left
	}
	t.root = head.right
}

// compress performs count consecutive left rotations down the right spine,
// anchored at a synthetic head. Each rotation detaches the scanning node's
// right grandchild and re-parents it, halving a vine segment per pass.
func (t *Tree) compress(count int) {
	head := &Node{right: t.root}
	scanner := head
	for i := 0; i < count; i++ {
		child := scanner.right
		if child == nil || child.right == nil {
			break
		}
		next := child.right
		scanner.right = next
		child.right = next.left
		next.left = child
		scanner = next
	}
	t.root = head.right
}
