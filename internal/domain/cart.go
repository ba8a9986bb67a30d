package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MergeKey selects which attribute of an added product identifies its cart line
type MergeKey string

const (
	// MergeByPrice merges every product sharing a price into one line
	MergeByPrice MergeKey = "price"
	// MergeByTitle merges products with the same (case-insensitive) title
	MergeByTitle MergeKey = "title"
	// MergeByID merges only repeated adds of the same product
	MergeByID MergeKey = "id"
)

// ParseMergeKey validates a merge key name; empty means MergeByPrice
func ParseMergeKey(name string) (MergeKey, error) {
	switch k := MergeKey(strings.ToLower(strings.TrimSpace(name))); k {
	case "":
		return MergeByPrice, nil
	case MergeByPrice, MergeByTitle, MergeByID:
		return k, nil
	default:
		return "", fmt.Errorf("unknown cart merge key %q (expected price, title or id)", name)
	}
}

// LineItem is one row of the cart
type LineItem struct {
	ProductID string
	Title     string
	Price     decimal.Decimal
	Quantity  int
}

// Subtotal returns Quantity × Price
func (l LineItem) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartState is an immutable-shape view of the cart's lines: the set of keys
// and their order never change once a CartState has been handed out, while
// quantities of lines already present keep advancing.
type CartState struct {
	lines map[string]*LineItem
	order []string
}

// Len returns the number of distinct lines
func (s CartState) Len() int {
	return len(s.order)
}

// Lines returns copies of the lines in insertion order of their keys
func (s CartState) Lines() []LineItem {
	out := make([]LineItem, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, *s.lines[k])
	}
	return out
}

// Lookup returns the line stored under key
func (s CartState) Lookup(key string) (LineItem, bool) {
	l, ok := s.lines[key]
	if !ok {
		return LineItem{}, false
	}
	return *l, true
}

// Cart aggregates added products into lines keyed by a MergeKey.
// A Cart is not safe for concurrent use.
type Cart struct {
	mergeKey MergeKey
	state    CartState
}

// NewCart creates an empty cart merging lines by key
func NewCart(key MergeKey) *Cart {
	if key == "" {
		key = MergeByPrice
	}
	return &Cart{
		mergeKey: key,
		state:    CartState{lines: map[string]*LineItem{}},
	}
}

// MergeKey returns the attribute lines are keyed by
func (c *Cart) MergeKey() MergeKey {
	return c.mergeKey
}

// KeyFor returns the line key a product with the given price would use
func (c *Cart) KeyFor(p Product, price decimal.Decimal) string {
	switch c.mergeKey {
	case MergeByTitle:
		return strings.ToLower(strings.TrimSpace(p.Title))
	case MergeByID:
		return p.ID
	default:
		return price.String()
	}
}

// Add puts one unit of p in the cart and returns the resulting line.
// created is true when p opened a new line. Opening a line replaces the
// backing state with a fresh copy, so a CartState taken earlier never gains
// keys; adding to an existing line increments its quantity in place.
func (c *Cart) Add(p Product) (line LineItem, created bool, err error) {
	price, err := p.Price()
	if err != nil {
		return LineItem{}, false, err
	}

	key := c.KeyFor(p, price)
	if existing, ok := c.state.lines[key]; ok {
		existing.Quantity++
		return *existing, false, nil
	}

	next := CartState{
		lines: make(map[string]*LineItem, len(c.state.lines)+1),
		order: make([]string, len(c.state.order), len(c.state.order)+1),
	}
	for k, v := range c.state.lines {
		next.lines[k] = v
	}
	copy(next.order, c.state.order)

	item := &LineItem{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     price,
		Quantity:  1,
	}
	next.lines[key] = item
	next.order = append(next.order, key)
	c.state = next

	return *item, true, nil
}

// State returns the current backing state
func (c *Cart) State() CartState {
	return c.state
}

// Lines returns the current lines in insertion order
func (c *Cart) Lines() []LineItem {
	return c.state.Lines()
}

// Count returns the total number of units across all lines
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.state.lines {
		n += l.Quantity
	}
	return n
}

// Total returns Σ quantity × price
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.state.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return c.state.Len() == 0
}
