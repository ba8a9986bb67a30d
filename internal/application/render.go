package application

import (
	"fmt"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/ports"
)

// ProjectCounter returns the counter value: units across all lines
func ProjectCounter(cart *domain.Cart) int {
	return cart.Count()
}

// ProjectList returns the cart list rows in line insertion order
func ProjectList(cart *domain.Cart, money ports.MoneyFormatter) ports.CartListView {
	lines := cart.Lines()
	view := ports.CartListView{
		Rows:  make([]ports.CartRow, 0, len(lines)),
		Empty: len(lines) == 0,
	}
	for _, l := range lines {
		view.Rows = append(view.Rows, ports.CartRow{
			Title:    l.Title,
			Quantity: QuantityLabel(l.Quantity),
			Price:    money.Format(l.Price),
		})
	}
	return view
}

// ProjectTotal returns the formatted cart total
func ProjectTotal(cart *domain.Cart, money ports.MoneyFormatter) string {
	return money.Format(cart.Total())
}

// QuantityLabel renders a line quantity, e.g. "2 unid."
func QuantityLabel(quantity int) string {
	return fmt.Sprintf("%d unid.", quantity)
}

// Summary renders the cart as plain text, one line per row plus the total
func Summary(cart *domain.Cart, money ports.MoneyFormatter) string {
	return SummaryOf(ProjectCounter(cart), ProjectList(cart, money), ProjectTotal(cart, money))
}

// SummaryOf renders already projected cart views as plain text
func SummaryOf(counter int, list ports.CartListView, total string) string {
	if list.Empty {
		return "Cart is empty."
	}

	var sb strings.Builder
	for _, row := range list.Rows {
		fmt.Fprintf(&sb, "%s  %s  %s\n", row.Title, row.Quantity, row.Price)
	}
	fmt.Fprintf(&sb, "Items: %d\n", counter)
	fmt.Fprintf(&sb, "Total: %s\n", total)
	return sb.String()
}
