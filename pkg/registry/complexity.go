package registry

// Operation names accepted by [Complexity].
const (
	OpInsert     = "avl_insert"
	OpRemove     = "avl_remove"
	OpSearch     = "avl_search"
	OpBFS        = "bfs"
	OpDFS        = "dfs"
	OpDijkstra   = "dijkstra"
	OpDSWBalance = "dsw_balance"
	OpTraversal  = "traversal"
)

var complexities = map[string]string{
	OpInsert:     "O(log n)",
	OpRemove:     "O(log n)",
	OpSearch:     "O(log n)",
	OpBFS:        "O(V + E)",
	OpDFS:        "O(V + E)",
	OpDijkstra:   "O(E log V)",
	OpDSWBalance: "O(n)",
	OpTraversal:  "O(n)",
}

// Complexity returns the theoretical cost of an operation, shown to the
// user after each menu action. Unknown operations return "—".
func Complexity(op string) string {
	if c, ok := complexities[op]; ok {
		return c
	}
	return "—"
}
