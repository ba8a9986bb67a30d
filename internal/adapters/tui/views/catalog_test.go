package views

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

type plainMoney struct{}

func (plainMoney) Format(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var enterKey = tea.KeyMsg{Type: tea.KeyEnter}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "banana", Title: "Banana", PriceText: "$100"},
		{ID: "apple", Title: "Apple", PriceText: "$25"},
		{ID: "cherry", Title: "Cherry", PriceText: "$100"},
	}
}

func newTestCatalog(t *testing.T) (*CatalogModel, *string) {
	t.Helper()
	copied := new(string)
	m := NewCatalogModel(CatalogConfig{
		Money:         plainMoney{},
		MergeKey:      domain.MergeByPrice,
		ToastDuration: time.Millisecond,
		Copy: func(text string) error {
			*copied = text
			return nil
		},
	})
	m.SetProducts(testProducts())
	return m, copied
}

func cardIDs(m *CatalogModel) []string {
	var ids []string
	for _, c := range m.Cards() {
		ids = append(ids, c.ID())
	}
	return ids
}

func TestCatalog_StartsWithEmptyCart(t *testing.T) {
	m, _ := newTestCatalog(t)

	if !m.Cart().List().Empty {
		t.Error("expected empty cart list before any add")
	}
	if m.Cart().Counter() != 0 {
		t.Errorf("counter = %d, want 0", m.Cart().Counter())
	}
	if !strings.Contains(m.View(), "Your cart is empty") {
		t.Error("expected empty cart message in view")
	}
}

func TestCatalog_SortCyclesStrategies(t *testing.T) {
	m, _ := newTestCatalog(t)

	want := []struct {
		strategy domain.Strategy
		order    []string
	}{
		{domain.StrategyDesc, []string{"banana", "cherry", "apple"}},
		{domain.StrategyAsc, []string{"apple", "banana", "cherry"}},
		{domain.StrategyABC, []string{"apple", "banana", "cherry"}},
		{domain.StrategyDefault, []string{"banana", "apple", "cherry"}},
	}

	for _, w := range want {
		m.Update(runeKey('s'))
		if m.Strategy() != w.strategy {
			t.Fatalf("strategy = %s, want %s", m.Strategy(), w.strategy)
		}
		if got := cardIDs(m); strings.Join(got, ",") != strings.Join(w.order, ",") {
			t.Errorf("%s: order = %v, want %v", w.strategy, got, w.order)
		}
	}
}

func TestCatalog_SortBackWraps(t *testing.T) {
	m, _ := newTestCatalog(t)

	m.Update(runeKey('S'))
	if m.Strategy() != domain.StrategyABC {
		t.Errorf("strategy = %s, want %s", m.Strategy(), domain.StrategyABC)
	}
}

func TestCatalog_AddMergesByPrice(t *testing.T) {
	m, _ := newTestCatalog(t)

	// banana
	_, cmd := m.Update(enterKey)
	if cmd == nil {
		t.Fatal("expected toast hide command after add")
	}
	if !m.Toast().Visible() {
		t.Error("expected toast visible after add")
	}

	// cherry, same price as banana
	m.Update(runeKey('j'))
	m.Update(runeKey('j'))
	m.Update(runeKey('a'))

	if m.Cart().Counter() != 2 {
		t.Errorf("counter = %d, want 2", m.Cart().Counter())
	}
	rows := m.Cart().List().Rows
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Quantity != "2 unid." {
		t.Errorf("quantity = %q, want %q", rows[0].Quantity, "2 unid.")
	}
	if m.Cart().Total() != "$200.00" {
		t.Errorf("total = %q, want $200.00", m.Cart().Total())
	}
}

func TestCatalog_CardIdentitySurvivesSort(t *testing.T) {
	m, _ := newTestCatalog(t)

	apple := m.Cards()[1]
	m.Update(runeKey('j'))
	m.Update(enterKey)
	if apple.Added() != 1 {
		t.Fatalf("apple badge = %d, want 1", apple.Added())
	}

	// asc moves apple to the top; the cursor follows it
	m.Update(runeKey('s'))
	m.Update(runeKey('s'))
	if m.Cards()[0] != apple {
		t.Fatal("expected the same apple card first after asc sort")
	}
	if m.Selected() != apple {
		t.Error("expected cursor to stay on apple")
	}

	m.Update(enterKey)
	if apple.Added() != 2 {
		t.Errorf("apple badge = %d, want 2", apple.Added())
	}
	if m.Cart().Counter() != 2 {
		t.Errorf("counter = %d, want 2", m.Cart().Counter())
	}
}

func TestCatalog_InvalidPrice(t *testing.T) {
	m, _ := newTestCatalog(t)
	m.SetProducts([]domain.Product{
		{ID: "free", Title: "Mystery", PriceText: "ask"},
		{ID: "apple", Title: "Apple", PriceText: "$25"},
	})

	m.Update(enterKey)
	if !m.MessageErr {
		t.Error("expected error message for unreadable price")
	}
	if m.Cart().Counter() != 0 {
		t.Errorf("counter = %d, want 0", m.Cart().Counter())
	}

	// asc puts the unpriced card last
	m.Update(runeKey('s'))
	m.Update(runeKey('s'))
	if got := cardIDs(m); got[len(got)-1] != "free" {
		t.Errorf("order = %v, want free last", got)
	}
}

func TestCatalog_CopySummary(t *testing.T) {
	m, copied := newTestCatalog(t)

	m.Update(enterKey)
	m.Update(runeKey('y'))

	if !strings.Contains(*copied, "Banana") || !strings.Contains(*copied, "Total: $100.00") {
		t.Errorf("copied = %q", *copied)
	}
	if m.MessageErr {
		t.Errorf("unexpected error message %q", m.Message)
	}
}

func TestCatalog_CopyFailure(t *testing.T) {
	m := NewCatalogModel(CatalogConfig{
		Money: plainMoney{},
		Copy:  func(string) error { return errors.New("no clipboard") },
	})
	m.SetProducts(testProducts())

	m.Update(runeKey('y'))
	if !m.MessageErr || !strings.Contains(m.Message, "no clipboard") {
		t.Errorf("message = %q, err = %v", m.Message, m.MessageErr)
	}
}

func TestCatalog_LoadsAsync(t *testing.T) {
	m := NewCatalogModel(CatalogConfig{
		Money: plainMoney{},
		Load: func(context.Context) ([]domain.Product, error) {
			return testProducts(), nil
		},
	})

	if !strings.Contains(m.View(), "Loading catalog") {
		t.Error("expected loading view before the catalog arrives")
	}
	if m.Init() == nil {
		t.Fatal("expected init command")
	}

	m.Update(m.loadCatalog())
	if len(m.Cards()) != 3 {
		t.Errorf("cards = %d, want 3", len(m.Cards()))
	}
}

func TestCatalog_LoadError(t *testing.T) {
	m := NewCatalogModel(CatalogConfig{
		Money: plainMoney{},
		Load: func(context.Context) ([]domain.Product, error) {
			return nil, errors.New("database locked")
		},
	})

	m.Update(m.loadCatalog())
	if !m.MessageErr || !strings.Contains(m.Message, "database locked") {
		t.Errorf("message = %q", m.Message)
	}
}

func TestCatalog_HelpKey(t *testing.T) {
	m, _ := newTestCatalog(t)

	_, cmd := m.Update(runeKey('?'))
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(SwitchToHelpMsg); !ok {
		t.Error("expected SwitchToHelpMsg")
	}
}
