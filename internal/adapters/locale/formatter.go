package locale

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"storefront/internal/ports"
)

const (
	DefaultLocale   = "es-AR"
	DefaultCurrency = "ARS"
)

const nbsp = "\u00a0"

// placement is where a locale writes the currency symbol relative to the digits
type placement struct {
	suffix bool
	space  string
}

// Standard currency patterns, by region-qualified tag first and base language
// second. Anything missing uses the root pattern "¤ #,##0.00".
var placements = map[string]placement{
	"en":    {space: ""},
	"ja":    {space: ""},
	"zh":    {space: ""},
	"ko":    {space: ""},
	"pt":    {space: nbsp},
	"pt-PT": {suffix: true, space: nbsp},
	"es":    {suffix: true, space: nbsp},
	"es-AR": {space: nbsp},
	"es-CO": {space: nbsp},
	"es-UY": {space: nbsp},
	"es-MX": {space: ""},
	"es-US": {space: ""},
	"es-CL": {space: ""},
	"de":    {suffix: true, space: nbsp},
	"fr":    {suffix: true, space: nbsp},
	"it":    {suffix: true, space: nbsp},
	"ru":    {suffix: true, space: nbsp},
	"pl":    {suffix: true, space: nbsp},
	"cs":    {suffix: true, space: nbsp},
	"sv":    {suffix: true, space: nbsp},
	"fi":    {suffix: true, space: nbsp},
	"da":    {suffix: true, space: nbsp},
	"nb":    {suffix: true, space: nbsp},
}

func lookupPlacement(tag language.Tag) placement {
	base, _ := tag.Base()
	if region, conf := tag.Region(); conf == language.Exact {
		if p, ok := placements[base.String()+"-"+region.String()]; ok {
			return p
		}
	}
	if p, ok := placements[base.String()]; ok {
		return p
	}
	return placement{space: nbsp}
}

// Formatter renders amounts as currency strings for one locale and currency
type Formatter struct {
	tag        language.Tag
	unit       currency.Unit
	printer    *message.Printer
	symbol     string
	scale      int
	place      placement
	decimalSep string
	groupSep   string
}

// Ensure Formatter implements ports.MoneyFormatter
var _ ports.MoneyFormatter = (*Formatter)(nil)

// NewFormatter creates a formatter for a BCP 47 locale and an ISO 4217 currency code
func NewFormatter(locale, currencyCode string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
	}

	printer := message.NewPrinter(tag)
	scale, _ := currency.Standard.Rounding(unit)

	return &Formatter{
		tag:        tag,
		unit:       unit,
		printer:    printer,
		symbol:     printer.Sprint(currency.NarrowSymbol(unit)),
		scale:      scale,
		place:      lookupPlacement(tag),
		decimalSep: between(printer.Sprint(number.Decimal(1.5, number.Scale(1))), "1", "5"),
		groupSep:   between(printer.Sprint(number.Decimal(int64(1000))), "1", "000"),
	}, nil
}

// between returns what the printer wrote between two known digit runs
func between(s, head, tail string) string {
	s = strings.TrimPrefix(s, head)
	return strings.TrimSuffix(s, tail)
}

// Format renders amount with the currency's standard number of decimals, the
// locale's separators and the symbol where the locale puts it, e.g.
// "$ 1.234,50" for es-AR and "1.234,50 €" for de-DE.
func (f *Formatter) Format(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(int32(f.scale))
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	digits := f.groupInt(intPart)
	if fracPart != "" {
		digits += f.decimalSep + fracPart
	}

	var b strings.Builder
	if amount.Round(int32(f.scale)).IsNegative() {
		b.WriteString("-")
	}
	if f.place.suffix {
		b.WriteString(digits)
		b.WriteString(f.place.space)
		b.WriteString(f.symbol)
	} else {
		b.WriteString(f.symbol)
		b.WriteString(f.place.space)
		b.WriteString(digits)
	}
	return b.String()
}

// groupInt applies the locale's digit grouping to an unsigned run of digits.
// Values that fit an int64 go through the printer; wider ones are grouped in
// threes with the locale's separator.
func (f *Formatter) groupInt(digits string) string {
	if n, err := decimal.NewFromString(digits); err == nil && n.LessThanOrEqual(maxInt64) {
		return f.printer.Sprint(number.Decimal(n.IntPart()))
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(f.groupSep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

var maxInt64 = decimal.NewFromInt(1<<63 - 1)

// Locale returns the formatter's language tag
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

// Currency returns the formatter's currency unit
func (f *Formatter) Currency() currency.Unit {
	return f.unit
}

// Symbol returns the narrow currency symbol
func (f *Formatter) Symbol() string {
	return f.symbol
}
