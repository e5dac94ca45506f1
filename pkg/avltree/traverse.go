package avltree

// InOrder visits every node in ascending key order. The visit function
// returns false to stop the traversal early. The walk uses an explicit
// stack, so recursion depth is not a concern for large trees.
func (t *Tree) InOrder(visit func(*Node) bool) {
	stack := make([]*Node, 0, t.Height())
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

// PreOrder visits every node before its subtrees (node, left, right).
// The visit function returns false to stop the traversal early.
func (t *Tree) PreOrder(visit func(*Node) bool) {
	preOrder(t.root, visit)
}

func preOrder(node *Node, visit func(*Node) bool) bool {
	if node == nil {
		return true
	}
	return visit(node) && preOrder(node.left, visit) && preOrder(node.right, visit)
}

// PostOrder visits every node after its subtrees (left, right, node).
// The visit function returns false to stop the traversal early.
func (t *Tree) PostOrder(visit func(*Node) bool) {
	postOrder(t.root, visit)
}

func postOrder(node *Node, visit func(*Node) bool) bool {
	if node == nil {
		return true
	}
	return postOrder(node.left, visit) && postOrder(node.right, visit) && visit(node)
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
