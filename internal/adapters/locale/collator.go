package locale

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"storefront/internal/ports"
)

// Collator compares titles with the collation rules of a locale.
// A Collator is not safe for concurrent use.
type Collator struct {
	c *collate.Collator
}

// Ensure Collator implements ports.TitleCollator
var _ ports.TitleCollator = (*Collator)(nil)

// NewCollator creates a collator for a BCP 47 locale
func NewCollator(locale string) (*Collator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Collator{c: collate.New(tag)}, nil
}

// Compare returns -1, 0 or 1 as a sorts before, with or after b
func (c *Collator) Compare(a, b string) int {
	return c.c.CompareString(a, b)
}
