// Package session serializes catalog sorts and cart adds for surfaces that
// may call in from several goroutines, such as the MCP server.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/application"
	"storefront/internal/application/commands"
	"storefront/internal/domain"
	"storefront/internal/ports"
)

// Session is one shopper's catalog shelf and cart
type Session struct {
	mu       sync.Mutex
	id       string
	shelf    ports.Shelf
	store    *application.CartStore
	collator ports.TitleCollator
	strategy domain.Strategy
	logger   *zap.Logger
}

// CartSnapshot is the cart as the three views show it
type CartSnapshot struct {
	Counter int
	List    ports.CartListView
	Total   string
	Summary string
}

// New creates a session over shelf whose adds go through store
func New(shelf ports.Shelf, store *application.CartStore, collator ports.TitleCollator, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	store.Render()
	return &Session{
		id:       id,
		shelf:    shelf,
		store:    store,
		collator: collator,
		strategy: domain.StrategyDefault,
		logger:   logger.With(zap.String("session", id)),
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Strategy returns the last applied sort strategy
func (s *Session) Strategy() domain.Strategy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strategy
}

// Catalog returns the products in their current display order
func (s *Session) Catalog() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	nodes := s.shelf.Nodes()
	products := make([]domain.Product, 0, len(nodes))
	for i, n := range nodes {
		p := productOf(n)
		p.Position = i
		products = append(products, p)
	}
	return products
}

// Sort reorders the shelf by the named strategy
func (s *Session) Sort(ctx context.Context, strategy string) (*commands.SortResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := commands.NewSortCatalogCommand(s.shelf, s.collator, s.logger, strategy)
	result, err := cmd.Execute(ctx)
	if err != nil {
		return nil, err
	}
	s.strategy = result.Strategy
	return result, nil
}

// Add puts one unit of the product with the given ID in the cart
func (s *Session) Add(ctx context.Context, productID string) (*commands.AddToCartResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, ok := s.find(productID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", application.ErrNotFound, productID)
	}
	return commands.NewAddToCartCommand(s.store, productOf(node)).Execute(ctx)
}

// Cart returns the current cart views. When the store renders into a view
// that can be read back, the snapshot is what that view last showed.
func (s *Session) Cart() CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap CartSnapshot
	if v, ok := s.store.View().(ports.RenderedCartView); ok {
		snap.Counter, snap.List, snap.Total = v.Counter(), v.List(), v.Total()
	} else {
		cart, money := s.store.Cart(), s.store.Money()
		snap.Counter = application.ProjectCounter(cart)
		snap.List = application.ProjectList(cart, money)
		snap.Total = application.ProjectTotal(cart, money)
	}
	snap.Summary = application.SummaryOf(snap.Counter, snap.List, snap.Total)
	return snap
}

func (s *Session) find(id string) (ports.ItemNode, bool) {
	for _, n := range s.shelf.Nodes() {
		if n.ID() == id {
			return n, true
		}
	}
	return nil, false
}

func productOf(n ports.ItemNode) domain.Product {
	return domain.Product{ID: n.ID(), Title: n.Title(), PriceText: n.PriceText()}
}
