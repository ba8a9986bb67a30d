package sqlite

import (
	"database/sql"

	"storefront/internal/domain"
	"storefront/internal/ports"
)

// catalogTx implements ports.CatalogTx
type catalogTx struct {
	tx *sql.Tx
}

// Ensure catalogTx implements CatalogTx
var _ ports.CatalogTx = (*catalogTx)(nil)

// UpsertProduct inserts or updates a product
func (t *catalogTx) UpsertProduct(p *domain.Product) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO products (id, title, price_text, position)
		VALUES (?, ?, ?, ?)
	`, p.ID, p.Title, p.PriceText, p.Position)
	return err
}

// DeleteAll removes every product
func (t *catalogTx) DeleteAll() error {
	_, err := t.tx.Exec(`DELETE FROM products`)
	return err
}

// Commit commits the transaction
func (t *catalogTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *catalogTx) Rollback() error {
	return t.tx.Rollback()
}
