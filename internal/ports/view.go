package ports

import "github.com/shopspring/decimal"

// CartRow is one rendered cart line
type CartRow struct {
	Title    string
	Quantity string // e.g., "2 unid."
	Price    string // formatted unit price
}

// CartListView is the rendered cart list
type CartListView struct {
	Rows  []CartRow
	Empty bool
}

// CartView receives the derived cart views after every mutation
type CartView interface {
	ShowCounter(count int)
	ShowList(list CartListView)
	ShowTotal(total string)
}

// RenderedCartView is a CartView that can be read back
type RenderedCartView interface {
	CartView
	Counter() int
	List() CartListView
	Total() string
}

// Notifier shows the transient "added to cart" notification
type Notifier interface {
	Notify()
}

// MoneyFormatter renders amounts as locale-specific currency strings
type MoneyFormatter interface {
	Format(amount decimal.Decimal) string
}

// TitleCollator compares titles with locale-aware ordering
type TitleCollator interface {
	Compare(a, b string) int
}
