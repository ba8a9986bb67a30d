package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"storefront/internal/domain"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the catalog sort strategies",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range domain.Strategies() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", s, s.Label())
		}
	},
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}
