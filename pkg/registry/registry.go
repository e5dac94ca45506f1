// Package registry manages the keyed collection of cities. Cities live in
// an AVL tree indexed by integer ID; every city owns a local route graph
// created on registration. The registry can also export its contents into a
// plain BST for comparison with the on-demand DSW balancing transform.
package registry

import (
	"github.com/dmoreira/cityatlas/pkg/avltree"
	"github.com/dmoreira/cityatlas/pkg/bstree"
	"github.com/dmoreira/cityatlas/pkg/graph"
)

// City is a registered entry: an integer ID, a display name and the city's
// own route graph (districts and weighted routes).
type City struct {
	ID     int
	Name   string
	Routes *graph.Graph

	// TreeHeight is the height of the city's node at snapshot time,
	// shown by the traversal views.
	TreeHeight int
}

// Order selects a traversal order for [Registry.Cities].
type Order int

const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

// String returns the traversal order name.
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	default:
		return "in-order"
	}
}

// Option configures a Registry.
type Option func(*Registry)

// WithDirectedRoutes makes newly created city graphs directed (one-way
// routes). The default is undirected.
func WithDirectedRoutes() Option {
	return func(r *Registry) { r.directed = true }
}

// Registry is the in-memory city collection. It is not safe for concurrent
// use without external synchronization.
type Registry struct {
	tree     *avltree.Tree
	directed bool
}

// New creates an empty registry. Each registered city gets a fresh route
// graph from the tree's payload factory, so graphs are never shared.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	r.tree = avltree.New(avltree.WithPayloadFactory(func() any {
		if r.directed {
			return graph.NewDirected()
		}
		return graph.New()
	}))
	return r
}

// Register inserts a city or renames an existing one. The route graph of an
// existing city is preserved across re-registration.
func (r *Registry) Register(id int, name string) City {
	r.tree.Insert(id, name)
	node, _ := r.tree.Search(id)
	return cityFromNode(node)
}

// Remove deletes a city and its route graph. Removing an unknown ID is a
// no-op; the return value reports whether a city was removed.
func (r *Registry) Remove(id int) bool {
	return r.tree.Remove(id)
}

// Find returns the city for id, if registered.
func (r *Registry) Find(id int) (City, bool) {
	node, ok := r.tree.Search(id)
	if !ok {
		return City{}, false
	}
	return cityFromNode(node), true
}

// Len returns the number of registered cities.
func (r *Registry) Len() int { return r.tree.Len() }

// Height returns the height of the underlying AVL tree.
func (r *Registry) Height() int { return r.tree.Height() }

// Tree exposes the underlying AVL tree for read-only inspection
// (rendering, diagnostics).
func (r *Registry) Tree() *avltree.Tree { return r.tree }

// Cities returns a snapshot of all cities in the given traversal order.
func (r *Registry) Cities(order Order) []City {
	out := make([]City, 0, r.tree.Len())
	visit := func(n *avltree.Node) bool {
		out = append(out, cityFromNode(n))
		return true
	}
	switch order {
	case PreOrder:
		r.tree.PreOrder(visit)
	case PostOrder:
		r.tree.PostOrder(visit)
	default:
		r.tree.InOrder(visit)
	}
	return out
}

// ExportBST copies the registry contents, in key order, into a fresh
// unbalanced BST. This is pure data movement: city entries (including route
// graphs) are shared with the originals, the tree nodes are new. In-order
// insertion makes the result a worst-case right-leaning chain, which is the
// interesting input for [bstree.Tree.Balance].
func (r *Registry) ExportBST() *bstree.Tree {
	out := bstree.New()
	r.tree.InOrder(func(n *avltree.Node) bool {
		out.InsertWithPayload(n.Key, n.Label, n.Payload)
		return true
	})
	return out
}

// BalancedExport returns ExportBST() after a DSW balance pass.
func (r *Registry) BalancedExport() *bstree.Tree {
	out := r.ExportBST()
	out.Balance()
	return out
}

func cityFromNode(n *avltree.Node) City {
	c := City{ID: n.Key, Name: n.Label, TreeHeight: n.Height()}
	if g, ok := n.Payload.(*graph.Graph); ok {
		c.Routes = g
	}
	return c
}
