package commands

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/ports"
)

// ListCatalogCommand lists all products in the catalog
type ListCatalogCommand struct {
	repo ports.CatalogRepository
}

// NewListCatalogCommand creates a new ListCatalogCommand
func NewListCatalogCommand(repo ports.CatalogRepository) *ListCatalogCommand {
	return &ListCatalogCommand{repo: repo}
}

// Execute runs the list catalog command
func (c *ListCatalogCommand) Execute(ctx context.Context) ([]domain.Product, error) {
	return c.repo.List(ctx)
}

// GetProductCommand fetches a single product
type GetProductCommand struct {
	repo ports.CatalogRepository
	ID   string
}

// NewGetProductCommand creates a new GetProductCommand
func NewGetProductCommand(repo ports.CatalogRepository, id string) *GetProductCommand {
	return &GetProductCommand{
		repo: repo,
		ID:   id,
	}
}

// Execute runs the get product command
func (c *GetProductCommand) Execute(ctx context.Context) (*domain.Product, error) {
	return c.repo.Get(ctx, c.ID)
}
