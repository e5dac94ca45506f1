package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmoreira/cityatlas/pkg/registry"
)

func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted tour of the registry, graphs and DSW balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			loggerFromContext(cmd.Context()).Debug("seeding demo atlas")
			return runDemo(cmd.OutOrStdout(), seedAtlas(c.Config))
		},
	}
}

// seedAtlas builds the sample registry used by the demo and render commands.
// Keys arrive in an order that exercises every AVL rotation case.
func seedAtlas(cfg Config) *registry.Registry {
	var opts []registry.Option
	if cfg.Routes.Directed {
		opts = append(opts, registry.WithDirectedRoutes())
	}
	reg := registry.New(opts...)

	for _, c := range []struct {
		id   int
		name string
	}{
		{20, "Veloria"},
		{10, "Ashford"},
		{30, "Marwick"},
		{25, "Quillhaven"},
		{40, "Dunmore"},
		{50, "Tarnwell"},
	} {
		reg.Register(c.id, c.name)
	}

	veloria, _ := reg.Find(20)
	for _, d := range []string{"Center", "Harbor", "Oldtown", "Mills"} {
		_ = veloria.Routes.AddVertex(d)
	}
	_ = veloria.Routes.AddEdge("Center", "Harbor", 1)
	_ = veloria.Routes.AddEdge("Harbor", "Oldtown", 2)
	_ = veloria.Routes.AddEdge("Center", "Oldtown", 10)
	_ = veloria.Routes.AddEdge("Oldtown", "Mills", 3)

	ashford, _ := reg.Find(10)
	for _, d := range []string{"North", "South"} {
		_ = ashford.Routes.AddVertex(d)
	}
	_ = ashford.Routes.AddEdge("North", "South", 4)
	_ = ashford.Routes.AddVertex("Island") // deliberately unreachable

	return reg
}

func runDemo(w io.Writer, reg *registry.Registry) error {
	fmt.Fprintf(w, "Registered %d cities, AVL height %d\n\n", reg.Len(), reg.Height())

	for _, order := range []registry.Order{registry.PreOrder, registry.InOrder, registry.PostOrder} {
		ids := make([]string, 0, reg.Len())
		for _, city := range reg.Cities(order) {
			ids = append(ids, fmt.Sprintf("%d", city.ID))
		}
		fmt.Fprintf(w, "%-10s %s\n", order.String()+":", strings.Join(ids, " "))
	}
	fmt.Fprintln(w)

	veloria, _ := reg.Find(20)
	bfs, err := veloria.Routes.BFS("Center")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Veloria BFS from Center:  %s\n", strings.Join(bfs, " → "))
	dfs, err := veloria.Routes.DFS("Center")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Veloria DFS from Center:  %s\n", strings.Join(dfs, " → "))

	dist, path, err := veloria.Routes.ShortestPath("Center", "Mills")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Shortest Center → Mills:  %s (distance %g)\n", strings.Join(path, " → "), dist)

	ashford, _ := reg.Find(10)
	dist, _, err = ashford.Routes.ShortestPath("North", "Island")
	if err != nil {
		return err
	}
	if math.IsInf(dist, 1) {
		fmt.Fprintln(w, "Ashford Island:           unreachable from North")
	}
	fmt.Fprintln(w)

	bst := reg.ExportBST()
	before := bst.Height()
	bst.Balance()
	fmt.Fprintf(w, "BST export height: %d → DSW → %d (%s)\n",
		before, bst.Height(), registry.Complexity(registry.OpDSWBalance))
	return nil
}
