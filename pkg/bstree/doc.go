// Package bstree implements a plain (unbalanced) binary search tree keyed
// by integers, plus an on-demand global rebalancing step based on the
// Day–Stout–Warren algorithm.
//
// Unlike the AVL tree in pkg/avltree, this tree performs no per-mutation
// fixups: after adversarial insert orders its height can degenerate to O(n).
// Calling [Tree.Balance] reshapes the whole tree in O(n) time and O(1)
// extra space into the minimal height a binary tree of n nodes can have,
// ⌈log₂(n+1)⌉, without changing the in-order key sequence.
//
// The transform works in two phases over the same node storage:
//
//  1. tree-to-vine: successive right rotations flatten the tree into a
//     right-only chain (a "vine") that preserves key order.
//  2. compression: logarithmically many passes of left rotations fold the
//     vine back into a perfectly filled tree.
//
// The tree is not safe for concurrent use without external synchronization.
package bstree
