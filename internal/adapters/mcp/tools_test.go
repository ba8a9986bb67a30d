package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/adapters/memory"
	"storefront/internal/application"
	"storefront/internal/application/session"
	"storefront/internal/domain"
)

type plainMoney struct{}

func (plainMoney) Format(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

type nopNotifier struct{}

func (nopNotifier) Notify() {}

func newTestSession() *session.Session {
	shelf := memory.NewProductShelf([]domain.Product{
		{ID: "banana", Title: "Banana", PriceText: "$100"},
		{ID: "apple", Title: "Apple", PriceText: "$25"},
	})
	store := application.NewCartStore(domain.NewCart(domain.MergeByPrice), plainMoney{}, memory.NewCartView(), nopNotifier{}, nil)
	return session.New(shelf, store, nil, nil)
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, res.IsError
}

func TestListCatalog(t *testing.T) {
	out, isErr := call(t, listCatalogHandler(newTestSession()), nil)
	assert.False(t, isErr)
	assert.Contains(t, out, "banana  Banana  $100")
	assert.Less(t, strings.Index(out, "banana"), strings.Index(out, "apple"))
}

func TestSortCatalog(t *testing.T) {
	sess := newTestSession()

	out, isErr := call(t, sortCatalogHandler(sess), map[string]any{"strategy": "asc"})
	assert.False(t, isErr)
	assert.Less(t, strings.Index(out, "apple  Apple"), strings.Index(out, "banana  Banana"))

	out, isErr = call(t, sortCatalogHandler(sess), map[string]any{"strategy": "randomly"})
	assert.True(t, isErr)
	assert.Contains(t, out, "unknown sorting method")

	_, isErr = call(t, sortCatalogHandler(sess), nil)
	assert.True(t, isErr)
}

func TestAddToCartAndView(t *testing.T) {
	sess := newTestSession()

	out, isErr := call(t, addToCartHandler(sess), map[string]any{"product_id": "banana"})
	assert.False(t, isErr)
	assert.Contains(t, out, "Added Banana (1 unid.)")

	out, isErr = call(t, viewCartHandler(sess), nil)
	assert.False(t, isErr)
	assert.Contains(t, out, "Items: 1")
	assert.Contains(t, out, "Total: $100.00")

	out, isErr = call(t, addToCartHandler(sess), map[string]any{"product_id": "durian"})
	assert.True(t, isErr)
	assert.Contains(t, out, "durian")
}

func TestViewCart_Empty(t *testing.T) {
	out, _ := call(t, viewCartHandler(newTestSession()), nil)
	assert.Equal(t, "Cart is empty.", out)
}

func TestListStrategies(t *testing.T) {
	out, _ := call(t, listStrategiesHandler(), nil)
	for _, s := range domain.Strategies() {
		assert.Contains(t, out, string(s))
	}
}
