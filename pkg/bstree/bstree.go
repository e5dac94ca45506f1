package bstree

// Node is a single entry of the tree. There is no height field: the tree
// carries no balance bookkeeping between [Tree.Balance] calls.
type Node struct {
	Key     int
	Label   string
	Payload any

	left, right *Node
}

// Left returns the root of the left subtree, or nil if it is empty.
func (n *Node) Left() *Node { return n.left }

// Right returns the root of the right subtree, or nil if it is empty.
func (n *Node) Right() *Node { return n.right }

// Tree is an unbalanced binary search tree. The zero value is an empty
// usable tree.
type Tree struct {
	root *Node
	size int
}

// New creates an empty tree.
func New() *Tree { return &Tree{} }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return t.size }

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node { return t.root }

// Height returns the height of the tree, computed by descent; an empty
// tree has height 0.
func (t *Tree) Height() int { return height(t.root) }

func height(node *Node) int {
	if node == nil {
		return 0
	}
	return 1 + max(height(node.left), height(node.right))
}

// Insert adds a node for key or, if the key already exists, overwrites its
// label and leaves the payload untouched. No rebalancing happens; height is
// unbounded until [Tree.Balance] is called.
func (t *Tree) Insert(key int, label string) {
	t.root = t.insert(t.root, key, label, nil, false)
}

// InsertWithPayload behaves like [Tree.Insert] but always sets the node's
// payload, including an explicit nil.
func (t *Tree) InsertWithPayload(key int, label string, payload any) {
	t.root = t.insert(t.root, key, label, payload, true)
}

func (t *Tree) insert(node *Node, key int, label string, payload any, explicit bool) *Node {
	if node == nil {
		t.size++
		return &Node{Key: key, Label: label, Payload: payload}
	}
	switch {
	case key < node.Key:
		node.left = t.insert(node.left, key, label, payload, explicit)
	case key > node.Key:
		node.right = t.insert(node.right, key, label, payload, explicit)
	default:
		node.Label = label
		if explicit {
			node.Payload = payload
		}
	}
	return node
}

// Search locates the node for key by iterative descent. The second return
// value reports whether the key is present.
func (t *Tree) Search(key int) (*Node, bool) {
	node := t.root
	for node != nil {
		switch {
		case key < node.Key:
			node = node.left
		case key > node.Key:
			node = node.right
		default:
			return node, true
		}
	}
	return nil, false
}

// Remove deletes the node for key and reports whether it existed. The
// two-child case copies the in-order successor's entry into the node and
// removes the successor from the right subtree; no rotation follows.
func (t *Tree) Remove(key int) bool {
	var removed bool
	t.root = t.remove(t.root, key, &removed)
	if removed {
		t.size--
	}
	return removed
}

func (t *Tree) remove(node *Node, key int, removed *bool) *Node {
	if node == nil {
		return nil
	}
	switch {
	case key < node.Key:
		node.left = t.remove(node.left, key, removed)
	case key > node.Key:
		node.right = t.remove(node.right, key, removed)
	default:
		*removed = true
		if node.left == nil {
			return node.right
		}
		if node.right == nil {
			return node.left
		}
		succ := minNode(node.right)
		node.Key, node.Label, node.Payload = succ.Key, succ.Label, succ.Payload
		node.right = t.remove(node.right, succ.Key, removed)
	}
	return node
}

func minNode(node *Node) *Node {
	for node.left != nil {
		node = node.left
	}
	return node
}

// InOrder visits every node in ascending key order. The visit function
// returns false to stop early. The walk uses an explicit stack: before a
// Balance call the tree can be a chain of depth n, which would overflow a
// recursive walk.
func (t *Tree) InOrder(visit func(*Node) bool) {
	var stack []*Node
	node := t.root
	for node != nil || len(stack) > 0 {
		for node != nil {
			stack = append(stack, node)
			node = node.left
		}
		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(node) {
			return
		}
		node = node.right
	}
}

// PreOrder visits every node before its subtrees. Iterative for the same
// depth reason as InOrder.
func (t *Tree) PreOrder(visit func(*Node) bool) {
	if t.root == nil {
		return
	}
	stack := []*Node{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(node) {
			return
		}
		if node.right != nil {
			stack = append(stack, node.right)
		}
		if node.left != nil {
			stack = append(stack, node.left)
		}
	}
}

// PostOrder visits every node after its subtrees, using a two-stack
// iterative scheme (push node/left/right, then replay reversed).
func (t *Tree) PostOrder(visit func(*Node) bool) {
	if t.root == nil {
		return
	}
	stack := []*Node{t.root}
	var out []*Node
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, node)
		if node.left != nil {
			stack = append(stack, node.left)
		}
		if node.right != nil {
			stack = append(stack, node.right)
		}
	}
	for i := len(out) - 1; i >= 0; i-- {
		if !visit(out[i]) {
			return
		}
	}
}

// Keys returns all keys in ascending order.
func (t *Tree) Keys() []int {
	keys := make([]int, 0, t.size)
	t.InOrder(func(n *Node) bool {
		keys = append(keys, n.Key)
		return true
	})
	return keys
}
