package application

import (
	"github.com/shopspring/decimal"

	"storefront/internal/ports"
)

// plainMoney formats amounts without locale rules
type plainMoney struct{}

func (plainMoney) Format(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// recorder captures view and notifier calls in the order they happen
type recorder struct {
	calls   []string
	counter int
	list    ports.CartListView
	total   string
}

func (r *recorder) ShowCounter(count int) {
	r.calls = append(r.calls, "counter")
	r.counter = count
}

func (r *recorder) ShowList(list ports.CartListView) {
	r.calls = append(r.calls, "list")
	r.list = list
}

func (r *recorder) ShowTotal(total string) {
	r.calls = append(r.calls, "total")
	r.total = total
}

func (r *recorder) Notify() {
	r.calls = append(r.calls, "notify")
}
