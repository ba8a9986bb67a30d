package commands

import (
	"context"
	"fmt"

	"storefront/internal/application"
	"storefront/internal/domain"
)

// AddToCartResult contains the result of adding a product to the cart
type AddToCartResult struct {
	Line    domain.LineItem
	NewLine bool
	Message string
}

// AddToCartCommand adds one unit of a product to a session's cart
type AddToCartCommand struct {
	store   *application.CartStore
	Product domain.Product
}

// NewAddToCartCommand creates a new AddToCartCommand
func NewAddToCartCommand(store *application.CartStore, product domain.Product) *AddToCartCommand {
	return &AddToCartCommand{
		store:   store,
		Product: product,
	}
}

// Validate checks if the add operation is valid
func (c *AddToCartCommand) Validate() error {
	if c.store == nil {
		return fmt.Errorf("%w: no cart", application.ErrInvalidOperation)
	}
	return application.ValidateProduct(c.Product)
}

// Execute runs the add to cart command
func (c *AddToCartCommand) Execute(ctx context.Context) (*AddToCartResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	line, created, err := c.store.Add(ctx, c.Product)
	if err != nil {
		return nil, err
	}

	return &AddToCartResult{
		Line:    line,
		NewLine: created,
		Message: fmt.Sprintf("Added %s (%s)", c.Product.Title, application.QuantityLabel(line.Quantity)),
	}, nil
}
