package graph

import (
	"container/heap"
	"math"
	"slices"
)

// Dijkstra computes single-source shortest paths from source over
// non-negative edge weights using a binary min-heap, in O(E log V).
//
// The distance map covers every vertex; unreachable vertices hold +Inf.
// The predecessor map holds, for every reached vertex except source, the
// previous vertex on a shortest path. Returns ErrUnknownVertex if source
// was never added.
func (g *Graph) Dijkstra(source string) (map[string]float64, map[string]string, error) {
	if !g.HasVertex(source) {
		return nil, nil, ErrUnknownVertex
	}

	dist := make(map[string]float64, len(g.adj))
	for id := range g.adj {
		dist[id] = math.Inf(1)
	}
	prev := make(map[string]string)

	dist[source] = 0
	pq := &distQueue{{vertex: source, dist: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(distItem)
		if item.dist > dist[item.vertex] {
			continue // stale entry superseded by a shorter path
		}
		for _, e := range g.adj[item.vertex] {
			if alt := item.dist + e.Weight; alt < dist[e.To] {
				dist[e.To] = alt
				prev[e.To] = item.vertex
				heap.Push(pq, distItem{vertex: e.To, dist: alt})
			}
		}
	}
	return dist, prev, nil
}

// ShortestPath returns the minimal distance from source to target and the
// vertex sequence of one such path, both endpoints included. When target is
// unreachable it returns (+Inf, nil, nil). Returns ErrUnknownVertex if
// either endpoint was never added.
func (g *Graph) ShortestPath(source, target string) (float64, []string, error) {
	if !g.HasVertex(target) {
		return 0, nil, ErrUnknownVertex
	}
	dist, prev, err := g.Dijkstra(source)
	if err != nil {
		return 0, nil, err
	}
	if math.IsInf(dist[target], 1) {
		return math.Inf(1), nil, nil
	}

	var path []string
	for at := target; ; {
		path = append(path, at)
		p, ok := prev[at]
		if !ok {
			break
		}
		at = p
	}
	slices.Reverse(path)
	return dist[target], path, nil
}

// distItem is a heap entry: a vertex and its tentative distance at push
// time. Entries are never updated in place; superseded ones are skipped on
// pop.
type distItem struct {
	vertex string
	dist   float64
}

type distQueue []distItem

func (q distQueue) Len() int           { return len(q) }
func (q distQueue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q distQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *distQueue) Push(x any)        { *q = append(*q, x.(distItem)) }

func (q *distQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
