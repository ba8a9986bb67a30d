package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"storefront/internal/application/session"
	"storefront/internal/domain"
)

// RegisterReadTools adds the read-only catalog and cart tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, sess *session.Session) {
	s.AddTool(listCatalogTool(), listCatalogHandler(sess))
	s.AddTool(viewCartTool(), viewCartHandler(sess))
	s.AddTool(listStrategiesTool(), listStrategiesHandler())
}

// --- list_catalog ---

func listCatalogTool() mcp.Tool {
	return mcp.NewTool("list_catalog",
		mcp.WithDescription("List the catalog in its current display order. Each line is: id, title, price."),
	)
}

func listCatalogHandler(sess *session.Session) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		products := sess.Catalog()
		if len(products) == 0 {
			return mcp.NewToolResultText("Catalog is empty."), nil
		}
		return mcp.NewToolResultText(formatCatalog(products, sess.Strategy())), nil
	}
}

// --- view_cart ---

func viewCartTool() mcp.Tool {
	return mcp.NewTool("view_cart",
		mcp.WithDescription("Show the cart: one line per item with quantity and unit price, then the item count and total."),
	)
}

func viewCartHandler(sess *session.Session) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(sess.Cart().Summary), nil
	}
}

// --- list_strategies ---

func listStrategiesTool() mcp.Tool {
	return mcp.NewTool("list_strategies",
		mcp.WithDescription("List the sort strategies accepted by sort_catalog."),
	)
}

func listStrategiesHandler() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		for _, s := range domain.Strategies() {
			fmt.Fprintf(&sb, "%s  %s\n", s, s.Label())
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatCatalog(products []domain.Product, strategy domain.Strategy) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Sorted by: %s\n", strategy.Label())
	for _, p := range products {
		fmt.Fprintf(&sb, "%s  %s  %s\n", p.ID, p.Title, p.PriceText)
	}
	return sb.String()
}
