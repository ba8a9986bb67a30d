package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a product ID is not in the catalog
var ErrProductNotFound = errors.New("product not found")

// Product is a purchasable catalog entry as it is displayed
type Product struct {
	ID        string
	Title     string
	PriceText string // e.g., "$1234.50"
	Position  int    // 0-based insertion order in the catalog
}

// Price parses the displayed price
func (p Product) Price() (decimal.Decimal, error) {
	return ParseAmount(p.PriceText)
}

// CatalogRecord is the sortable value view of one rendered item for a single
// sort pass. Index is the item's position when the pass started; Origin is
// its insertion position, which the default order restores.
type CatalogRecord struct {
	Title   string // lowercased
	Price   decimal.Decimal
	PriceOK bool // false when the displayed price could not be parsed
	Index   int
	Origin  int
}

// NewCatalogRecord builds the record for the item at position index. Origin
// starts equal to index; callers that know the insertion position set it. The parse
// error, if any, is returned alongside a usable record so the item keeps its
// place in the pass.
func NewCatalogRecord(title, priceText string, index int) (CatalogRecord, error) {
	rec := CatalogRecord{
		Title:  strings.ToLower(title),
		Index:  index,
		Origin: index,
	}
	price, err := ParseAmount(priceText)
	if err != nil {
		return rec, err
	}
	rec.Price = price
	rec.PriceOK = true
	return rec, nil
}
