package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/dmoreira/cityatlas/pkg/avltree"
	"github.com/dmoreira/cityatlas/pkg/bstree"
	"github.com/dmoreira/cityatlas/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// Name is the graph title; defaults to "G".
	Name string
	// ShowHeights includes per-node heights in tree labels (AVL only).
	ShowHeights bool
}

func (o Options) name() string {
	if o.Name == "" {
		return "G"
	}
	return o.Name
}

// GraphDOT converts a route graph to Graphviz DOT. Undirected graphs emit
// "graph" with each mirrored edge written once; directed graphs emit
// "digraph". Vertices are sorted for deterministic output.
func GraphDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	kind, arrow := "graph", "--"
	if g.Directed() {
		kind, arrow = "digraph", "->"
	}
	fmt.Fprintf(&buf, "%s %q {\n", kind, opts.name())
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %q;\n", v)
	}

	buf.WriteString("\n")
	for _, u := range g.Vertices() {
		for _, e := range g.Neighbors(u) {
			// On undirected graphs every edge appears in both adjacency
			// lists; keep the lexicographically first copy only.
			if !g.Directed() && u > e.To {
				continue
			}
			fmt.Fprintf(&buf, "  %q %s %q [label=%q];\n",
				u, arrow, e.To, strconv.FormatFloat(e.Weight, 'g', -1, 64))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// AVLTreeDOT converts an AVL tree to Graphviz DOT, top-down. With
// Options.ShowHeights each label carries the node's height.
func AVLTreeDOT(t *avltree.Tree, opts Options) string {
	return treeDOT(fromAVL(t.Root(), opts.ShowHeights), opts)
}

// BSTTreeDOT converts a plain BST to Graphviz DOT, top-down. Useful for
// before/after views around a DSW balance call.
func BSTTreeDOT(t *bstree.Tree, opts Options) string {
	return treeDOT(fromBST(t.Root()), opts)
}

// binNode is a neutral snapshot of a binary tree node; both tree types
// convert into it so the DOT writer stays shape-only.
type binNode struct {
	key         int
	label       string
	left, right *binNode
}

func fromAVL(n *avltree.Node, showHeight bool) *binNode {
	if n == nil {
		return nil
	}
	label := nodeLabel(n.Key, n.Label)
	if showHeight {
		label += fmt.Sprintf("\nh=%d", n.Height())
	}
	return &binNode{
		key:   n.Key,
		label: label,
		left:  fromAVL(n.Left(), showHeight),
		right: fromAVL(n.Right(), showHeight),
	}
}

func fromBST(n *bstree.Node) *binNode {
	if n == nil {
		return nil
	}
	return &binNode{
		key:   n.Key,
		label: nodeLabel(n.Key, n.Label),
		left:  fromBST(n.Left()),
		right: fromBST(n.Right()),
	}
}

func nodeLabel(key int, label string) string {
	if label == "" {
		return strconv.Itoa(key)
	}
	return fmt.Sprintf("%d\n%s", key, label)
}

func treeDOT(root *binNode, opts Options) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", opts.name())
	buf.WriteString("  graph [ordering=out];\n")
	buf.WriteString("  node [shape=box, style=rounded, fontsize=12];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("\n")
	writeTree(&buf, root)
	buf.WriteString("}\n")
	return buf.String()
}

func writeTree(buf *bytes.Buffer, n *binNode) {
	if n == nil {
		return
	}
	fmt.Fprintf(buf, "  n%d [label=%q];\n", n.key, n.label)
	writeChild(buf, n, n.left, "l")
	writeChild(buf, n, n.right, "r")
	writeTree(buf, n.left)
	writeTree(buf, n.right)
}

// writeChild emits the parent-child edge, or an invisible spacer when the
// slot is empty but the sibling is not, keeping the survivor on its side.
func writeChild(buf *bytes.Buffer, parent, child *binNode, side string) {
	if child != nil {
		fmt.Fprintf(buf, "  n%d -> n%d;\n", parent.key, child.key)
		return
	}
	if parent.left == nil && parent.right == nil {
		return
	}
	fmt.Fprintf(buf, "  sp%d%s [style=invis, width=0, label=\"\"];\n", parent.key, side)
	fmt.Fprintf(buf, "  n%d -> sp%d%s [style=invis];\n", parent.key, parent.key, side)
}
