package memory

import (
	"context"
	"slices"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/ports"
)

// Catalog is an in-memory ports.CatalogRepository
type Catalog struct {
	mu       sync.RWMutex
	products []domain.Product
}

// Ensure Catalog implements ports.CatalogRepository
var _ ports.CatalogRepository = (*Catalog)(nil)

// NewCatalog creates a catalog holding products in order
func NewCatalog(products ...domain.Product) *Catalog {
	c := &Catalog{}
	for i, p := range products {
		p.Position = i
		c.products = append(c.products, p)
	}
	return c
}

func (c *Catalog) List(_ context.Context) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.products), nil
}

func (c *Catalog) Get(_ context.Context, id string) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// BeginTx stages writes against a copy that replaces the catalog on Commit
func (c *Catalog) BeginTx(_ context.Context) (ports.CatalogTx, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return &catalogTx{catalog: c, staged: slices.Clone(c.products)}, nil
}

func (c *Catalog) Close() error {
	return nil
}

type catalogTx struct {
	catalog *Catalog
	staged  []domain.Product
	done    bool
}

func (t *catalogTx) UpsertProduct(p *domain.Product) error {
	for i := range t.staged {
		if t.staged[i].ID == p.ID {
			t.staged[i] = *p
			return nil
		}
	}
	t.staged = append(t.staged, *p)
	return nil
}

func (t *catalogTx) DeleteAll() error {
	t.staged = nil
	return nil
}

func (t *catalogTx) Commit() error {
	if t.done {
		return errTxDone
	}
	t.done = true

	slices.SortStableFunc(t.staged, func(a, b domain.Product) int {
		return a.Position - b.Position
	})

	t.catalog.mu.Lock()
	defer t.catalog.mu.Unlock()
	t.catalog.products = t.staged
	return nil
}

func (t *catalogTx) Rollback() error {
	if t.done {
		return errTxDone
	}
	t.done = true
	return nil
}
