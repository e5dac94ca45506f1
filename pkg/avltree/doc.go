// Package avltree implements a self-balancing binary search tree keyed by
// integers, with an arbitrary payload attached to each node.
//
// # Overview
//
// The tree restores the AVL height-balance invariant (the subtree heights of
// every node differ by at most one) after every insert and remove, so all
// operations run in O(log n). Keys are unique: inserting an existing key
// updates the node in place instead of creating a duplicate.
//
// # Payloads
//
// Each node carries an opaque payload that the tree never inspects. A tree
// can be created with a payload factory that supplies a fresh payload for
// every newly inserted node:
//
//	t := avltree.New(avltree.WithPayloadFactory(func() any {
//	    return graph.New()
//	}))
//	t.Insert(42, "Porto Alegre") // payload comes from the factory
//
// [Tree.Insert] never touches the payload of an existing node;
// [Tree.InsertWithPayload] always sets it, including to nil. Use the latter
// when an explicit payload (even an empty one) is intended.
//
// # Traversals
//
// InOrder, PreOrder and PostOrder visit nodes in the standard recursive
// orders. In-order visits ascending keys and uses an explicit stack, so it
// is safe for arbitrarily deep trees.
//
// The tree is not safe for concurrent use without external synchronization.
package avltree
