// Package bootstrap opens the catalog and locale services every entry point
// shares.
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"storefront/internal/adapters/locale"
	"storefront/internal/adapters/memory"
	"storefront/internal/adapters/sqlite"
	"storefront/internal/application/commands"
	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/ports"
)

// MemoryCatalog is the catalog.db value that keeps the catalog in memory
// for the life of the process
const MemoryCatalog = ":memory:"

// Env holds the opened services
type Env struct {
	Config   *config.Config
	Logger   *zap.Logger
	Catalog  ports.CatalogRepository
	Money    *locale.Formatter
	Collator *locale.Collator
}

// Open opens the catalog database, seeding it when empty, and builds the
// locale formatter and collator.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Env, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	money, err := locale.NewFormatter(cfg.Locale, cfg.Currency)
	if err != nil {
		return nil, err
	}
	collator, err := locale.NewCollator(cfg.Locale)
	if err != nil {
		return nil, err
	}

	catalog, err := openCatalog(cfg.Catalog.DB)
	if err != nil {
		return nil, err
	}

	env := &Env{
		Config:   cfg,
		Logger:   logger,
		Catalog:  catalog,
		Money:    money,
		Collator: collator,
	}

	existing, err := catalog.List(ctx)
	if err != nil {
		catalog.Close()
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	if len(existing) == 0 {
		if _, err := env.Seed(ctx, cfg.Catalog.Seed); err != nil {
			catalog.Close()
			return nil, err
		}
	}

	logger.Debug("catalog opened",
		zap.String("catalog", cfg.Catalog.DB),
		zap.String("locale", cfg.Locale),
		zap.String("currency", cfg.Currency),
	)
	return env, nil
}

// Seed replaces the catalog with the products in seedPath, or with the
// built-in sample catalog when seedPath is empty.
func (e *Env) Seed(ctx context.Context, seedPath string) (*commands.SeedCatalogResult, error) {
	products, err := SeedProducts(seedPath)
	if err != nil {
		return nil, err
	}

	result, err := commands.NewSeedCatalogCommand(e.Catalog, products).Execute(ctx)
	if err != nil {
		return nil, err
	}
	e.Logger.Info("catalog seeded", zap.String("source", seedSource(seedPath)), zap.Int("products", result.Count))
	return result, nil
}

// ExportSeed writes the current catalog to path in the seed format
func (e *Env) ExportSeed(ctx context.Context, path string) error {
	products, err := e.Products(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create seed: %w", err)
	}
	if err := sqlite.WriteSeed(f, products); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Products lists the catalog in insertion order
func (e *Env) Products(ctx context.Context) ([]domain.Product, error) {
	return commands.NewListCatalogCommand(e.Catalog).Execute(ctx)
}

// Close releases the catalog and flushes the logger
func (e *Env) Close() error {
	_ = e.Logger.Sync()
	return e.Catalog.Close()
}

func openCatalog(db string) (ports.CatalogRepository, error) {
	if db == MemoryCatalog {
		return memory.NewCatalog(), nil
	}
	return sqlite.Open(db)
}

// SeedProducts loads a seed file, or the sample catalog for an empty path
func SeedProducts(seedPath string) ([]domain.Product, error) {
	if seedPath == "" {
		return sqlite.SampleProducts(), nil
	}
	return sqlite.LoadSeedFile(seedPath)
}

func seedSource(seedPath string) string {
	if seedPath == "" {
		return "sample"
	}
	return seedPath
}
