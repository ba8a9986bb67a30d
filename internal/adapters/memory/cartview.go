package memory

import (
	"sync"

	"storefront/internal/ports"
)

// CartView keeps the last rendered counter, list and total, like the
// elements of a page would
type CartView struct {
	mu      sync.RWMutex
	counter int
	list    ports.CartListView
	total   string
}

// Ensure CartView implements ports.RenderedCartView
var _ ports.RenderedCartView = (*CartView)(nil)

// NewCartView creates a view in the empty-cart state
func NewCartView() *CartView {
	return &CartView{list: ports.CartListView{Empty: true}}
}

func (v *CartView) ShowCounter(count int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.counter = count
}

func (v *CartView) ShowList(list ports.CartListView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.list = list
}

func (v *CartView) ShowTotal(total string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.total = total
}

// Counter returns the last rendered counter
func (v *CartView) Counter() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.counter
}

// List returns the last rendered list
func (v *CartView) List() ports.CartListView {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.list
}

// Total returns the last rendered total
func (v *CartView) Total() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.total
}
