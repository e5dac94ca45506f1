// Package graph implements a weighted adjacency-list graph with the search
// routines used on per-city route maps: breadth-first and depth-first
// traversal and Dijkstra single-source shortest paths.
//
// Graphs are undirected by default (adding an edge mirrors it); use
// [NewDirected] for one-way routes. Vertices are identified by non-empty
// strings and must be added before edges reference them — the graph never
// auto-creates endpoints.
//
// Edge weights must be non-negative: Dijkstra's relaxation argument does
// not hold otherwise, so [Graph.AddEdge] rejects negative weights up front.
//
// Enumeration order is deterministic: [Graph.Vertices] sorts IDs and
// neighbor lists keep insertion order, so traversal results are stable
// across runs.
//
// The graph is not safe for concurrent use without external
// synchronization.
package graph
