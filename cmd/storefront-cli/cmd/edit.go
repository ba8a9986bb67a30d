package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"storefront/internal/adapters/editor"
	"storefront/internal/ports"
)

var fileEditor ports.FileEditor = editor.NewOpener()

var catalogEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the catalog in $EDITOR",
	Long: `Write the catalog to a seed file, open it in $EDITOR and reseed
from it when the editor exits. The file is --file, else catalog.seed from
the config, else a temporary file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		e := GetEnv()

		path := seedFile
		if path == "" {
			path = e.Config.Catalog.Seed
		}
		if path == "" {
			tmp, err := os.CreateTemp("", "storefront-*.yaml")
			if err != nil {
				return err
			}
			tmp.Close()
			path = tmp.Name()
			defer os.Remove(path)
		}

		if err := e.ExportSeed(ctx, path); err != nil {
			return err
		}
		if err := fileEditor.Edit(ctx, path); err != nil {
			return err
		}

		result, err := e.Seed(ctx, path)
		if err != nil {
			return fmt.Errorf("catalog unchanged: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogEditCmd)
	catalogEditCmd.Flags().StringVarP(&seedFile, "file", "f", "", "seed file to edit")
}
