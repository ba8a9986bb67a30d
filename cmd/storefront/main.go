package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"storefront/internal/adapters/tui"
	"storefront/internal/adapters/tui/views"
	"storefront/internal/bootstrap"
	"storefront/internal/config"
	"storefront/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to storefront.yaml")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// the TUI owns the terminal, so logs always go to a file
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = logging.DefaultFile()
	}
	logger, err := logging.New(logging.Options{File: logFile, Level: cfg.Log.Level})
	if err != nil {
		return err
	}

	env, err := bootstrap.Open(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer env.Close()

	app := tui.NewApp(views.CatalogConfig{
		Load:          env.Products,
		Money:         env.Money,
		Collator:      env.Collator,
		MergeKey:      cfg.MergeKey(),
		ToastDuration: cfg.Toast.Duration,
		Logger:        logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
