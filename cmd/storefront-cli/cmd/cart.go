package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"storefront/internal/adapters/memory"
	"storefront/internal/adapters/toast"
	"storefront/internal/application"
	"storefront/internal/application/session"
	"storefront/internal/domain"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Try out the cart",
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>...",
	Short: "Add products to a new cart and print it",
	Long: `Add each product, in order, to an empty cart, then print the
line items, the item count and the total. The cart is not kept.

Examples:
  storefront-cli cart add yerba-1kg yerba-1kg termo-acero`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		e := GetEnv()

		products, err := e.Products(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		notifier := toast.New(e.Config.Toast.Duration, toast.WithLogger(e.Logger))
		defer notifier.Stop()

		store := application.NewCartStore(
			domain.NewCart(e.Config.MergeKey()),
			e.Money,
			memory.NewCartView(),
			notifier,
			e.Logger,
		)
		sess := session.New(memory.NewProductShelf(products), store, e.Collator, e.Logger)

		for _, id := range args {
			result, err := sess.Add(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, result.Message)
		}

		fmt.Fprintln(out)
		fmt.Fprint(out, sess.Cart().Summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartAddCmd)
}
