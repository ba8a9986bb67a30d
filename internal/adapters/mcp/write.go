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

// RegisterWriteTools adds the tools that reorder the catalog or change the cart.
func RegisterWriteTools(s *server.MCPServer, sess *session.Session) {
	s.AddTool(sortCatalogTool(), sortCatalogHandler(sess))
	s.AddTool(addToCartTool(), addToCartHandler(sess))
}

// --- sort_catalog ---

func sortCatalogTool() mcp.Tool {
	names := make([]string, 0, len(domain.Strategies()))
	for _, s := range domain.Strategies() {
		names = append(names, string(s))
	}
	return mcp.NewTool("sort_catalog",
		mcp.WithDescription("Reorder the catalog. default restores the original order, asc/desc sort by price, abc sorts by title."),
		mcp.WithString("strategy",
			mcp.Description("Sort strategy: "+strings.Join(names, ", ")),
			mcp.Enum(names...),
			mcp.Required(),
		),
	)
}

func sortCatalogHandler(sess *session.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		strategy := req.GetString("strategy", "")
		if strategy == "" {
			return toolError(fmt.Errorf("strategy is required"))
		}

		result, err := sess.Sort(ctx, strategy)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		sb.WriteByte('\n')
		for _, perr := range result.Skipped {
			fmt.Fprintf(&sb, "warning: %v\n", perr)
		}
		sb.WriteString(formatCatalog(sess.Catalog(), result.Strategy))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- add_to_cart ---

func addToCartTool() mcp.Tool {
	return mcp.NewTool("add_to_cart",
		mcp.WithDescription("Add one unit of a catalog product to the cart and return the updated cart."),
		mcp.WithString("product_id",
			mcp.Description("Product ID as shown by list_catalog"),
			mcp.Required(),
		),
	)
}

func addToCartHandler(sess *session.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		productID := req.GetString("product_id", "")
		if productID == "" {
			return toolError(fmt.Errorf("product_id is required"))
		}

		result, err := sess.Add(ctx, productID)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message + "\n" + sess.Cart().Summary), nil
	}
}
