package application

import (
	"context"

	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/ports"
)

// CartStore owns a session's cart and keeps its views current.
// It is constructed once per session and passed to whoever adds to the cart.
type CartStore struct {
	cart     *domain.Cart
	money    ports.MoneyFormatter
	view     ports.CartView
	notifier ports.Notifier
	logger   *zap.Logger
}

// NewCartStore creates a CartStore rendering into view and notifying through notifier
func NewCartStore(cart *domain.Cart, money ports.MoneyFormatter, view ports.CartView, notifier ports.Notifier, logger *zap.Logger) *CartStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartStore{
		cart:     cart,
		money:    money,
		view:     view,
		notifier: notifier,
		logger:   logger,
	}
}

// Cart returns the underlying cart
func (s *CartStore) Cart() *domain.Cart {
	return s.cart
}

// Money returns the formatter used for rendering
func (s *CartStore) Money() ports.MoneyFormatter {
	return s.money
}

// Add puts one unit of p in the cart, then refreshes the counter, fires the
// notification, and refreshes the list and the total, in that order.
func (s *CartStore) Add(ctx context.Context, p domain.Product) (domain.LineItem, bool, error) {
	line, created, err := s.cart.Add(p)
	if err != nil {
		s.logger.Warn("rejected cart add",
			zap.String("product_id", p.ID),
			zap.String("price_text", p.PriceText),
			zap.Error(err),
		)
		return domain.LineItem{}, false, err
	}

	s.logger.Info("added to cart",
		zap.String("product_id", p.ID),
		zap.String("merge_key", string(s.cart.MergeKey())),
		zap.Int("quantity", line.Quantity),
		zap.Bool("new_line", created),
	)

	s.view.ShowCounter(ProjectCounter(s.cart))
	s.notifier.Notify()
	s.view.ShowList(ProjectList(s.cart, s.money))
	s.view.ShowTotal(ProjectTotal(s.cart, s.money))

	return line, created, nil
}

// View returns the view the store renders into
func (s *CartStore) View() ports.CartView {
	return s.view
}

// Render pushes the current state to the view without notifying
func (s *CartStore) Render() {
	s.view.ShowCounter(ProjectCounter(s.cart))
	s.view.ShowList(ProjectList(s.cart, s.money))
	s.view.ShowTotal(ProjectTotal(s.cart, s.money))
}
