package commands

import (
	"context"
	"fmt"

	"storefront/internal/application"
	"storefront/internal/domain"
	"storefront/internal/ports"
)

// SeedCatalogResult contains the result of seeding the catalog
type SeedCatalogResult struct {
	Count   int
	Message string
}

// SeedCatalogCommand replaces the catalog contents with Products
type SeedCatalogCommand struct {
	repo     ports.CatalogRepository
	Products []domain.Product
}

// NewSeedCatalogCommand creates a new SeedCatalogCommand
func NewSeedCatalogCommand(repo ports.CatalogRepository, products []domain.Product) *SeedCatalogCommand {
	return &SeedCatalogCommand{
		repo:     repo,
		Products: products,
	}
}

// Validate checks every product before anything is written
func (c *SeedCatalogCommand) Validate() error {
	seen := make(map[string]bool, len(c.Products))
	for i, p := range c.Products {
		if err := application.ValidateProduct(p); err != nil {
			return fmt.Errorf("product %d: %w", i, err)
		}
		if seen[p.ID] {
			return &application.ValidationError{
				Field:   "productID",
				Message: fmt.Sprintf("duplicate product ID %s", p.ID),
			}
		}
		seen[p.ID] = true
	}
	return nil
}

// Execute runs the seed command in a single transaction
func (c *SeedCatalogCommand) Execute(ctx context.Context) (*SeedCatalogResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	tx, err := c.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := tx.DeleteAll(); err != nil {
		return nil, fmt.Errorf("failed to clear catalog: %w", err)
	}
	for i := range c.Products {
		p := c.Products[i]
		p.Position = i
		if err := tx.UpsertProduct(&p); err != nil {
			return nil, fmt.Errorf("failed to store %s: %w", p.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit catalog: %w", err)
	}

	return &SeedCatalogResult{
		Count:   len(c.Products),
		Message: fmt.Sprintf("Seeded %d products", len(c.Products)),
	}, nil
}
