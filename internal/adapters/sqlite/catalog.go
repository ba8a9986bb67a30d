package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"storefront/internal/domain"
	"storefront/internal/ports"
)

const schemaVersion = "1"

// Catalog implements ports.CatalogRepository using SQLite
type Catalog struct {
	db     *sql.DB
	dbPath string
}

// Ensure Catalog implements CatalogRepository
var _ ports.CatalogRepository = (*Catalog)(nil)

// Open opens (creating if needed) the catalog database at dbPath.
// An empty dbPath uses DefaultPath().
func Open(dbPath string) (*Catalog, error) {
	if dbPath == "" {
		dbPath = DefaultPath()
	}

	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			price_text TEXT NOT NULL,
			position INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_products_position ON products(position);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &Catalog{db: db, dbPath: dbPath}, nil
}

// DefaultPath returns the catalog database path under the XDG data directory
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "storefront", "catalog.db")
}

// Path returns the database file path
func (c *Catalog) Path() string {
	return c.dbPath
}

// Close closes the database connection
func (c *Catalog) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// List returns all products ordered by position
func (c *Catalog) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, title, price_text, position
		FROM products ORDER BY position, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.PriceText, &p.Position); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// Get retrieves a product by ID
func (c *Catalog) Get(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product

	err := c.db.QueryRowContext(ctx, `
		SELECT id, title, price_text, position
		FROM products WHERE id = ?
	`, id).Scan(&p.ID, &p.Title, &p.PriceText, &p.Position)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// BeginTx starts a new transaction
func (c *Catalog) BeginTx(ctx context.Context) (ports.CatalogTx, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &catalogTx{tx: tx}, nil
}
