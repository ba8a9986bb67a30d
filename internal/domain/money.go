package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ErrInvalidPriceText is matched by every price parsing failure
var ErrInvalidPriceText = errors.New("invalid price text")

// InvalidPriceError reports a displayed price that could not be read as a number
type InvalidPriceError struct {
	Text string
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price text %q", e.Text)
}

func (e *InvalidPriceError) Is(target error) bool {
	return target == ErrInvalidPriceText
}

// ParseAmount converts a displayed price such as "$1234.50" into a decimal.
// A single leading currency glyph is stripped; the rest must be a plain
// decimal number.
func ParseAmount(display string) (decimal.Decimal, error) {
	s := strings.TrimSpace(display)

	if r, size := utf8.DecodeRuneInString(s); size > 0 && isCurrencyGlyph(r) {
		s = strings.TrimSpace(s[size:])
	}

	if s == "" {
		return decimal.Zero, &InvalidPriceError{Text: display}
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &InvalidPriceError{Text: display}
	}
	return amount, nil
}

// isCurrencyGlyph reports whether r can open a displayed price without being
// part of the number itself.
func isCurrencyGlyph(r rune) bool {
	if unicode.IsDigit(r) {
		return false
	}
	switch r {
	case '-', '+', '.':
		return false
	}
	return unicode.Is(unicode.Sc, r) || unicode.IsSymbol(r)
}
