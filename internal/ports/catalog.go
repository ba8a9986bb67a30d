package ports

import (
	"context"

	"storefront/internal/domain"
)

// CatalogRepository defines the interface for catalog storage
type CatalogRepository interface {
	// List returns all products in insertion order
	List(ctx context.Context) ([]domain.Product, error)

	// Get returns a single product, or domain.ErrProductNotFound
	Get(ctx context.Context, id string) (*domain.Product, error)

	// BeginTx starts a batch of catalog writes
	BeginTx(ctx context.Context) (CatalogTx, error)

	Close() error
}

// CatalogTx represents a transaction for atomic catalog updates
type CatalogTx interface {
	UpsertProduct(p *domain.Product) error
	DeleteAll() error

	// Transaction control
	Commit() error
	Rollback() error
}
