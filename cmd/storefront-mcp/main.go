package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"storefront/internal/adapters/memory"
	mcpadapter "storefront/internal/adapters/mcp"
	"storefront/internal/adapters/toast"
	"storefront/internal/application"
	"storefront/internal/application/session"
	"storefront/internal/bootstrap"
	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to storefront.yaml")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatalf("storefront-mcp: %v", err)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// stdout carries the protocol; logs go to stderr or the configured file
	logger, err := logging.New(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return err
	}

	ctx := context.Background()
	env, err := bootstrap.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer env.Close()

	products, err := env.Products(ctx)
	if err != nil {
		return err
	}

	notifier := toast.New(cfg.Toast.Duration, toast.WithLogger(logger))
	defer notifier.Stop()

	store := application.NewCartStore(
		domain.NewCart(cfg.MergeKey()),
		env.Money,
		memory.NewCartView(),
		notifier,
		logger,
	)
	sess := session.New(memory.NewProductShelf(products), store, env.Collator, logger)
	logger.Info("mcp session started", zap.String("session", sess.ID()), zap.Int("products", len(products)))

	mcpServer := server.NewMCPServer(
		"storefront-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, sess)
	mcpadapter.RegisterWriteTools(mcpServer, sess)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("mcp server stopped", zap.Error(err))
		return err
	}
	return nil
}
