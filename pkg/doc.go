// Package pkg provides the core libraries for the cityatlas registry.
//
// # Overview
//
// Cityatlas keeps a set of cities in a self-balancing search tree and gives
// every city its own weighted route graph. The pkg directory is organized
// into three areas:
//
//  1. Trees - [avltree] (self-balancing index) and [bstree] (plain BST with
//     an on-demand Day-Stout-Warren balance pass)
//  2. Graphs - [graph] (adjacency lists, BFS/DFS, Dijkstra)
//  3. Supporting - [registry] (the city collection tying trees and graphs
//     together), [render] (Graphviz output), [cache] (render artifacts),
//     [errors] (coded errors), [buildinfo] (version metadata)
//
// # Architecture
//
// The typical data flow:
//
//	city ID + name
//	     ↓
//	[registry] package (AVL-indexed cities, per-city route graphs)
//	     ↓
//	[graph] package (BFS / DFS / shortest paths per city)
//	     ↓
//	[render] package (DOT / SVG / PNG output)
//
// # Quick Start
//
// Register cities, query routes and compare tree shapes:
//
//	reg := registry.New()
//	reg.Register(20, "Veloria")
//	reg.Register(10, "Ashford")
//
//	city, _ := reg.Find(20)
//	_ = city.Routes.AddVertex("Center")
//	_ = city.Routes.AddVertex("Harbor")
//	_ = city.Routes.AddEdge("Center", "Harbor", 1)
//	dist, path, _ := city.Routes.ShortestPath("Center", "Harbor")
//
//	bst := reg.ExportBST() // worst-case chain
//	bst.Balance()          // DSW: O(n), no extra memory
//
// # Main Packages
//
// [avltree] - Height-balanced binary search tree with integer keys, string
// labels and opaque payloads. Rebalances on every insert and removal.
//
// [bstree] - Unbalanced binary search tree with the same node shape, plus
// [bstree.Tree.Balance], the Day-Stout-Warren rotation-only rebuild.
//
// [graph] - Weighted graphs over string vertex IDs. Directed or undirected,
// breadth- and depth-first traversal, Dijkstra shortest paths.
//
// [registry] - The city collection: AVL-indexed entries whose payloads are
// per-city route graphs, traversal snapshots, and BST export.
//
// [render] - DOT generation for graphs and trees, SVG/PNG via Graphviz.
//
// [cache] - Content-addressed artifact cache for rendered output.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/avltree/...  # Specific package
//	go test -run Example       # Examples only
//
// [avltree]: https://pkg.go.dev/github.com/dmoreira/cityatlas/pkg/avltree
// [bstree]: https://pkg.go.dev/github.com/dmoreira/cityatlas/pkg/bstree
// [graph]: https://pkg.go.dev/github.com/dmoreira/cityatlas/pkg/graph
// [registry]: https://pkg.go.dev/github.com/dmoreira/cityatlas/pkg/registry
// [render]: https://pkg.go.dev/github.com/dmoreira/cityatlas/pkg/render
// [cache]: https://pkg.go.dev/github.com/dmoreira/cityatlas/pkg/cache
// [errors]: https://pkg.go.dev/github.com/dmoreira/cityatlas/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/dmoreira/cityatlas/pkg/buildinfo
package pkg
