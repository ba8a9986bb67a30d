package views

import (
	"fmt"
	"strings"

	"storefront/internal/adapters/tui/styles"
	"storefront/internal/ports"
)

// CartPanel is the cart sidebar. It is the CartView the cart store renders
// into, so it only ever shows what the last Show* calls pushed.
type CartPanel struct {
	counter int
	list    ports.CartListView
	total   string
}

// Ensure CartPanel implements ports.CartView
var _ ports.CartView = (*CartPanel)(nil)

// NewCartPanel creates a panel in the empty-cart state
func NewCartPanel() *CartPanel {
	return &CartPanel{list: ports.CartListView{Empty: true}}
}

func (p *CartPanel) ShowCounter(count int)           { p.counter = count }
func (p *CartPanel) ShowList(list ports.CartListView) { p.list = list }
func (p *CartPanel) ShowTotal(total string)          { p.total = total }

// Counter returns the rendered item count
func (p *CartPanel) Counter() int {
	return p.counter
}

// List returns the rendered rows
func (p *CartPanel) List() ports.CartListView {
	return p.list
}

// Total returns the rendered total
func (p *CartPanel) Total() string {
	return p.total
}

// View renders the panel
func (p *CartPanel) View(width int) string {
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render("Cart"))
	b.WriteString(" ")
	b.WriteString(styles.CartCounter.Render(fmt.Sprintf("%d", p.counter)))
	b.WriteString("\n\n")

	if p.list.Empty {
		b.WriteString(styles.MutedText.Render("Your cart is empty"))
	} else {
		for _, row := range p.list.Rows {
			b.WriteString(row.Title)
			b.WriteString("\n")
			b.WriteString(styles.MutedText.Render("  " + row.Quantity + " x "))
			b.WriteString(styles.CardPrice.Render(row.Price))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(styles.CartTotal.Render("Total: " + p.total))
	}

	style := styles.CartPanel
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(b.String())
}
