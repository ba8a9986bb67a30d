package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"storefront/internal/bootstrap"
	"storefront/internal/config"
	"storefront/internal/logging"
)

var (
	configPath string
	env        *bootstrap.Env
)

var rootCmd = &cobra.Command{
	Use:   "storefront-cli",
	Short: "CLI for browsing the storefront catalog",
	Long: `storefront-cli lists and sorts the product catalog, seeds it from a
YAML file, and adds products to a one-off cart to check line merging
and totals.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "strategies" {
			return nil
		}

		if env != nil {
			_ = env.Close()
			env = nil
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err := logging.New(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level})
		if err != nil {
			return err
		}
		env, err = bootstrap.Open(context.Background(), cfg, logger)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if env == nil {
			return nil
		}
		err := env.Close()
		env = nil
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to storefront.yaml")
}

// GetEnv returns the opened catalog and locale services
func GetEnv() *bootstrap.Env {
	return env
}
