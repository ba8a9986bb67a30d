package views

import (
	"storefront/internal/domain"
	"storefront/internal/ports"
)

// ProductCard is one rendered product on the catalog shelf. Sorting moves
// the card itself, so its add behavior and badge travel with it.
type ProductCard struct {
	product domain.Product
	added   int
	onAdd   func(domain.Product) error
}

// Ensure ProductCard implements ports.ItemNode
var _ ports.ItemNode = (*ProductCard)(nil)

// NewProductCard creates a card for p whose add control runs onAdd
func NewProductCard(p domain.Product, onAdd func(domain.Product) error) *ProductCard {
	return &ProductCard{product: p, onAdd: onAdd}
}

func (c *ProductCard) ID() string        { return c.product.ID }
func (c *ProductCard) Title() string     { return c.product.Title }
func (c *ProductCard) PriceText() string { return c.product.PriceText }
func (c *ProductCard) Position() int     { return c.product.Position }

// Added returns how many times this card's add control succeeded
func (c *ProductCard) Added() int {
	return c.added
}

// Click runs the card's add control and bumps its badge on success
func (c *ProductCard) Click() error {
	if c.onAdd == nil {
		return nil
	}
	if err := c.onAdd(c.product); err != nil {
		return err
	}
	c.added++
	return nil
}
