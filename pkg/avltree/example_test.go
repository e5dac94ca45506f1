package avltree_test

import (
	"fmt"

	"github.com/dmoreira/cityatlas/pkg/avltree"
)

func ExampleTree() {
	t := avltree.New()
	for _, k := range []int{10, 20, 30, 40, 50, 25} {
		t.Insert(k, fmt.Sprintf("city-%d", k))
	}

	fmt.Println("size:", t.Len())
	fmt.Println("height:", t.Height())
	fmt.Println("root:", t.Root().Key)
	// Output:
	// size: 6
	// height: 3
	// root: 30
}

func ExampleTree_InOrder() {
	t := avltree.New()
	t.Insert(3, "Curitiba")
	t.Insert(1, "Recife")
	t.Insert(2, "Manaus")

	t.InOrder(func(n *avltree.Node) bool {
		fmt.Printf("%d %s\n", n.Key, n.Label)
		return true
	})
	// Output:
	// 1 Recife
	// 2 Manaus
	// 3 Curitiba
}
