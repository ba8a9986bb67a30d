package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"storefront/internal/adapters/memory"
	"storefront/internal/application/commands"
	"storefront/internal/domain"
	"storefront/internal/ports"
)

var (
	sortBy   string
	seedFile string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and seed the product catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products, optionally sorted",
	Long: `List the catalog in insertion order, or sorted by a strategy.

Examples:
  storefront-cli catalog list
  storefront-cli catalog list --sort asc
  storefront-cli catalog list --sort abc`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		products, err := GetEnv().Products(ctx)
		if err != nil {
			return err
		}

		shelf := memory.NewProductShelf(products)
		if sortBy != "" {
			sortCmd := commands.NewSortCatalogCommand(shelf, GetEnv().Collator, GetEnv().Logger, sortBy)
			result, err := sortCmd.Execute(ctx)
			if err != nil {
				return err
			}
			for _, perr := range result.Skipped {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", perr)
			}
		}

		printShelf(cmd.OutOrStdout(), shelf.Nodes())
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <product-id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		getCmd := commands.NewGetProductCommand(GetEnv().Catalog, args[0])
		p, err := getCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:       %s\n", p.ID)
		fmt.Fprintf(out, "Title:    %s\n", p.Title)
		fmt.Fprintf(out, "Price:    %s\n", p.PriceText)
		if amount, err := p.Price(); err == nil {
			fmt.Fprintf(out, "Amount:   %s\n", GetEnv().Money.Format(amount))
		} else {
			fmt.Fprintf(out, "Amount:   (%v)\n", err)
		}
		fmt.Fprintf(out, "Position: %d\n", p.Position)
		return nil
	},
}

var catalogSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the catalog with a YAML seed file",
	Long: `Replace the catalog contents. Without --file the built-in sample
catalog is used.

Seed format:
  products:
    - id: yerba-1kg
      title: Yerba mate 1kg
      price: "$3200"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := GetEnv().Seed(context.Background(), seedFile)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func printShelf(w io.Writer, nodes []ports.ItemNode) {
	money := GetEnv().Money
	for _, n := range nodes {
		price := n.PriceText()
		if amount, err := domain.ParseAmount(price); err == nil {
			price = money.Format(amount)
		}
		fmt.Fprintf(w, "%s  %s  %s\n", n.ID(), n.Title(), price)
	}
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogSeedCmd)

	catalogListCmd.Flags().StringVarP(&sortBy, "sort", "s", "", "sort strategy (default, desc, asc, abc)")
	catalogSeedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML seed file")
}
