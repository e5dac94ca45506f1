package avltree

import "errors"

// ErrEmptyTree is returned by [Tree.Min] when the tree has no nodes.
// Call sites that descend into a known non-empty subtree never see it;
// receiving it indicates a caller contract violation.
var ErrEmptyTree = errors.New("empty tree")

// Node is a single entry of the tree. Key, Label and Payload are exported
// for read access; children are owned exclusively by their parent and only
// reachable through the accessors.
type Node struct {
	Key     int
	Label   string
	Payload any

	left, right *Node
	height      int
}

// Left returns the root of the left subtree, or nil if it is empty.
func (n *Node) Left() *Node { return n.left }

// Right returns the root of the right subtree, or nil if it is empty.
func (n *Node) Right() *Node { return n.right }

// Height returns the height of the subtree rooted at n, where a leaf has
// height 1.
func (n *Node) Height() int { return height(n) }

// BalanceFactor returns height(left) − height(right) for n.
// For a tree at rest the result is always in {-1, 0, 1}.
func (n *Node) BalanceFactor() int { return balanceFactor(n) }

// Option configures a Tree.
type Option func(*Tree)

// WithPayloadFactory sets the factory invoked by [Tree.Insert] to build the
// payload of every newly created node. The factory is called once per new
// node so payloads are never shared between nodes.
func WithPayloadFactory(f func() any) Option {
	return func(t *Tree) { t.newPayload = f }
}

// Tree is an AVL tree. The zero value is usable and empty, but New is the
// preferred constructor since it applies options.
type Tree struct {
	root       *Node
	size       int
	newPayload func() any
}

// New creates an empty tree.
func New(opts ...Option) *Tree {
	t := &Tree{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return t.size }

// Height returns the height of the tree; an empty tree has height 0.
func (t *Tree) Height() int { return height(t.root) }

// Root returns the root node, or nil for an empty tree. It is exposed for
// read-only inspection (rendering, invariant checks).
func (t *Tree) Root() *Node { return t.root }

// Insert adds a node for key or, if the key already exists, overwrites its
// label. The payload of an existing node is left untouched; a new node gets
// its payload from the factory configured with [WithPayloadFactory] (nil if
// none was configured). The balance invariant is restored on every ancestor
// of the touched node before Insert returns.
func (t *Tree) Insert(key int, label string) {
	t.root = t.insert(t.root, key, label, nil, false)
}

// InsertWithPayload behaves like [Tree.Insert] but always sets the node's
// payload to the given value, including an explicit nil. This makes the
// caller's intent unambiguous where Insert deliberately preserves the old
// payload.
func (t *Tree) InsertWithPayload(key int, label string, payload any) {
	t.root = t.insert(t.root, key, label, payload, true)
}

func (t *Tree) insert(node *Node, key int, label string, payload any, explicit bool) *Node {
	if node == nil {
		if !explicit && t.newPayload != nil {
			payload = t.newPayload()
		}
		t.size++
		return &Node{Key: key, Label: label, Payload: payload, height: 1}
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
		return node
	}
	return rebalance(node)
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

// Remove deletes the node for key and reports whether it existed. Removing
// an absent key is a no-op. Every node on the deletion path is rebalanced
// bottom-up, so the balance invariant holds when Remove returns.
func (t *Tree) Remove(key int) bool {
	var removed bool
	t.root = t.remove(t.root, key, &removed)
	if removed {
		t.size--
	}
	return removed
}

// remove threads the removed flag through an explicit pointer argument
// instead of a captured counter, so the recursion stays self-contained.
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
		// Two children: adopt the in-order successor's entry, then delete
		// the successor from the right subtree.
		succ := minNode(node.right)
		node.Key, node.Label, node.Payload = succ.Key, succ.Label, succ.Payload
		node.right = t.remove(node.right, succ.Key, removed)
	}
	return rebalance(node)
}

// Min returns the node with the smallest key, or ErrEmptyTree when the tree
// is empty.
func (t *Tree) Min() (*Node, error) {
	if t.root == nil {
		return nil, ErrEmptyTree
	}
	return minNode(t.root), nil
}

func minNode(node *Node) *Node {
	for node.left != nil {
		node = node.left
	}
	return node
}

func height(node *Node) int {
	if node == nil {
		return 0
	}
	return node.height
}

func updateHeight(node *Node) {
	node.height = 1 + max(height(node.left), height(node.right))
}

func balanceFactor(node *Node) int {
	if node == nil {
		return 0
	}
	return height(node.left) - height(node.right)
}

// rebalance recomputes node's height and applies the rotation matching its
// balance factor. At most one descendant height changed by one level, so a
// single (possibly double) rotation is always enough.
func rebalance(node *Node) *Node {
	updateHeight(node)
	bf := balanceFactor(node)
	if bf > 1 {
		if balanceFactor(node.left) < 0 { // left-right case
			node.left = rotateLeft(node.left)
		}
		return rotateRight(node)
	}
	if bf < -1 {
		if balanceFactor(node.right) > 0 { // right-left case
			node.right = rotateRight(node.right)
		}
		return rotateLeft(node)
	}
	return node
}

// rotateRight promotes y's left child to subtree root.
//
//	    y          x
//	   / \        / \
//	  x   C  =>  A   y
//	 / \            / \
//	A   B          B   C
func rotateRight(y *Node) *Node {
	x := y.left
	y.left = x.right
	x.right = y
	updateHeight(y)
	updateHeight(x)
	return x
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft(x *Node) *Node {
	y := x.right
	x.right = y.left
	y.left = x
	updateHeight(x)
	updateHeight(y)
	return y
}
