package render

import (
	"strings"
	"testing"

	"github.com/dmoreira/cityatlas/pkg/avltree"
	"github.com/dmoreira/cityatlas/pkg/bstree"
	"github.com/dmoreira/cityatlas/pkg/graph"
)

func TestGraphDOT_Undirected(t *testing.T) {
	g := graph.New()
	for _, v := range []string{"center", "harbor"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("harbor", "center", 2.5)

	dot := GraphDOT(g, Options{Name: "Aurora"})

	if !strings.HasPrefix(dot, "graph \"Aurora\" {") {
		t.Errorf("DOT does not open an undirected graph:\n%s", dot)
	}
	if !strings.Contains(dot, `"center" -- "harbor" [label="2.5"];`) {
		t.Errorf("DOT missing deduplicated undirected edge:\n%s", dot)
	}
	if strings.Count(dot, "--") != 1 {
		t.Errorf("mirrored edge emitted twice:\n%s", dot)
	}
}

func TestGraphDOT_Directed(t *testing.T) {
	g := graph.NewDirected()
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")
	_ = g.AddEdge("A", "B", 1)

	dot := GraphDOT(g, Options{})

	if !strings.HasPrefix(dot, "digraph \"G\" {") {
		t.Errorf("DOT does not open a digraph:\n%s", dot)
	}
	if !strings.Contains(dot, `"A" -> "B" [label="1"];`) {
		t.Errorf("DOT missing directed edge:\n%s", dot)
	}
}

func TestAVLTreeDOT(t *testing.T) {
	tree := avltree.New()
	tree.Insert(2, "Boa Vista")
	tree.Insert(1, "Aurora")
	tree.Insert(3, "Cametá")

	dot := AVLTreeDOT(tree, Options{ShowHeights: true})

	for _, want := range []string{
		`n2 [label="2\nBoa Vista\nh=2"];`,
		`n1 [label="1\nAurora\nh=1"];`,
		"n2 -> n1;",
		"n2 -> n3;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestBSTTreeDOT_SpacerForSingleChild(t *testing.T) {
	tree := bstree.New()
	tree.Insert(1, "")
	tree.Insert(2, "") // right-only child of 1

	dot := BSTTreeDOT(tree, Options{})

	if !strings.Contains(dot, "n1 -> n2;") {
		t.Errorf("DOT missing parent edge:\n%s", dot)
	}
	if !strings.Contains(dot, "sp1l") {
		t.Errorf("DOT missing invisible spacer for empty left slot:\n%s", dot)
	}
}
