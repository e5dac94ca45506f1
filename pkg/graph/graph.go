package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidVertexID is returned by [Graph.AddVertex] and [Graph.AddEdge]
	// when a vertex ID is empty. All vertices must have non-empty identifiers.
	ErrInvalidVertexID = errors.New("vertex ID must not be empty")

	// ErrUnknownVertex is returned when an operation references a vertex
	// that was never added. Creating endpoints is the caller's
	// responsibility, not the graph's.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrNegativeWeight is returned by [Graph.AddEdge] for negative edge
	// weights, which would break Dijkstra's non-negativity precondition.
	ErrNegativeWeight = errors.New("edge weight must be non-negative")
)

// Edge is an outgoing adjacency entry: a target vertex and the weight of
// the connection.
type Edge struct {
	To     string
	Weight float64
}

// Graph is a weighted adjacency-list graph.
// The zero value is not usable — use [New] or [NewDirected].
type Graph struct {
	adj      map[string][]Edge
	directed bool
	edges    int
}

// New creates an empty undirected graph.
func New() *Graph {
	return &Graph{adj: make(map[string][]Edge)}
}

// NewDirected creates an empty directed graph.
func NewDirected() *Graph {
	g := New()
	g.directed = true
	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.adj) }

// EdgeCount returns the number of edges added via [Graph.AddEdge].
// Mirrored adjacency entries of an undirected edge count once.
func (g *Graph) EdgeCount() int { return g.edges }

// AddVertex registers a vertex. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrInvalidVertexID
	}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
	}
	return nil
}

// HasVertex reports whether the vertex exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// AddEdge connects u to v with the given weight. Both endpoints must
// already exist. On an undirected graph the reverse entry is added with the
// same weight.
func (g *Graph) AddEdge(u, v string, weight float64) error {
	if u == "" || v == "" {
		return ErrInvalidVertexID
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrUnknownVertex
	}
	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: weight})
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], Edge{To: u, Weight: weight})
	}
	g.edges++
	return nil
}

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Neighbors returns a copy of the adjacency list of id, in insertion order.
// It returns nil for unknown vertices.
func (g *Graph) Neighbors(id string) []Edge {
	return slices.Clone(g.adj[id])
}

// BFS returns the breadth-first visit order starting at start.
// Returns ErrUnknownVertex if start was never added.
func (g *Graph) BFS(start string) ([]string, error) {
	if !g.HasVertex(start) {
		return nil, ErrUnknownVertex
	}
	visited := map[string]bool{start: true}
	order := make([]string, 0, len(g.adj))
	queue := []string{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		for _, e := range g.adj[u] {
			if !visited[e.To] {
				visited[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
	return order, nil
}

// DFS returns the depth-first visit order starting at start, using an
// explicit stack. Neighbors are pushed in reverse so they pop in insertion
// order, matching the recursive visit sequence.
// Returns ErrUnknownVertex if start was never added.
func (g *Graph) DFS(start string) ([]string, error) {
	if !g.HasVertex(start) {
		return nil, ErrUnknownVertex
	}
	visited := make(map[string]bool, len(g.adj))
	order := make([]string, 0, len(g.adj))
	stack := []string{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[u] {
			continue
		}
		visited[u] = true
		order = append(order, u)
		neighbors := g.adj[u]
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !visited[neighbors[i].To] {
				stack = append(stack, neighbors[i].To)
			}
		}
	}
	return order, nil
}
