package memory

import (
	"slices"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/ports"
)

// Shelf is an in-memory ports.Shelf. Nodes are compared by identity.
type Shelf struct {
	mu    sync.RWMutex
	nodes []ports.ItemNode
}

// Ensure Shelf implements ports.Shelf
var _ ports.Shelf = (*Shelf)(nil)

// NewShelf creates a shelf holding nodes in the given order
func NewShelf(nodes ...ports.ItemNode) *Shelf {
	return &Shelf{nodes: slices.Clone(nodes)}
}

// Nodes returns a copy of the attached nodes in display order
func (s *Shelf) Nodes() []ports.ItemNode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.nodes)
}

// Len returns the number of attached nodes
func (s *Shelf) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// Detach removes node from the shelf
func (s *Shelf) Detach(node ports.ItemNode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.nodes, node)
	if i < 0 {
		return ports.ErrNodeNotAttached
	}
	s.nodes = slices.Delete(s.nodes, i, i+1)
	return nil
}

// Append attaches node at the end of the shelf
func (s *Shelf) Append(node ports.ItemNode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes = append(s.nodes, node)
}

// Node is a headless item node backed by a product. OnAdd is the behavior
// bound to the node's add-to-cart control.
type Node struct {
	product domain.Product
	OnAdd   func(domain.Product) error
}

// Ensure Node implements ports.ItemNode
var _ ports.ItemNode = (*Node)(nil)

// NewNode creates a node for p
func NewNode(p domain.Product) *Node {
	return &Node{product: p}
}

func (n *Node) ID() string        { return n.product.ID }
func (n *Node) Title() string     { return n.product.Title }
func (n *Node) PriceText() string { return n.product.PriceText }
func (n *Node) Position() int     { return n.product.Position }

// Product returns the product the node renders
func (n *Node) Product() domain.Product {
	return n.product
}

// Click runs the bound add-to-cart behavior
func (n *Node) Click() error {
	if n.OnAdd == nil {
		return nil
	}
	return n.OnAdd(n.product)
}

// NewProductShelf creates a shelf with one node per product, in slice order
func NewProductShelf(products []domain.Product) *Shelf {
	nodes := make([]ports.ItemNode, 0, len(products))
	for i, p := range products {
		p.Position = i
		nodes = append(nodes, NewNode(p))
	}
	return NewShelf(nodes...)
}
