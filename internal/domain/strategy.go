package domain

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Strategy names an ordering for the catalog
type Strategy string

const (
	StrategyDefault Strategy = "default" // original insertion order
	StrategyDesc    Strategy = "desc"    // price, highest first
	StrategyAsc     Strategy = "asc"     // price, lowest first
	StrategyABC     Strategy = "abc"     // title, locale collation
)

// ErrUnknownStrategy is matched by every unrecognized strategy name
var ErrUnknownStrategy = errors.New("unknown sorting method")

// UnknownStrategyError reports a strategy name outside Strategies()
type UnknownStrategyError struct {
	Name string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown sorting method %q (expected one of %s)", e.Name, strategyList())
}

func (e *UnknownStrategyError) Is(target error) bool {
	return target == ErrUnknownStrategy
}

// Strategies returns the recognized strategies in selector order
func Strategies() []Strategy {
	return []Strategy{StrategyDefault, StrategyDesc, StrategyAsc, StrategyABC}
}

func strategyList() string {
	names := make([]string, 0, 4)
	for _, s := range Strategies() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// Label returns the human readable selector label
func (s Strategy) Label() string {
	switch s {
	case StrategyDefault:
		return "Featured"
	case StrategyDesc:
		return "Price: high to low"
	case StrategyAsc:
		return "Price: low to high"
	case StrategyABC:
		return "Name: A-Z"
	default:
		return string(s)
	}
}

// ParseStrategy validates a strategy name
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(name)
	if slices.Contains(Strategies(), s) {
		return s, nil
	}
	return "", &UnknownStrategyError{Name: name}
}

// TitleCompare orders two lowercased titles, returning <0, 0 or >0
type TitleCompare func(a, b string) int

// Comparator returns the record ordering for s. titles is only consulted by
// StrategyABC; nil falls back to byte-wise comparison.
func Comparator(s Strategy, titles TitleCompare) (func(a, b CatalogRecord) int, error) {
	switch s {
	case StrategyDefault:
		return func(a, b CatalogRecord) int {
			return cmp.Or(cmp.Compare(a.Origin, b.Origin), cmp.Compare(a.Index, b.Index))
		}, nil
	case StrategyDesc:
		return func(a, b CatalogRecord) int {
			return comparePrices(b, a, true)
		}, nil
	case StrategyAsc:
		return func(a, b CatalogRecord) int {
			return comparePrices(a, b, false)
		}, nil
	case StrategyABC:
		if titles == nil {
			titles = strings.Compare
		}
		return func(a, b CatalogRecord) int {
			return titles(a.Title, b.Title)
		}, nil
	default:
		return nil, &UnknownStrategyError{Name: string(s)}
	}
}

// comparePrices compares a to b by price. Records without a parsed price go
// after every priced record whichever direction is asked for; swapped tells
// which argument order the caller used.
func comparePrices(a, b CatalogRecord, swapped bool) int {
	switch {
	case a.PriceOK && b.PriceOK:
		return a.Price.Cmp(b.Price)
	case !a.PriceOK && !b.PriceOK:
		return 0
	case !a.PriceOK:
		if swapped {
			return -1
		}
		return 1
	default:
		if swapped {
			return 1
		}
		return -1
	}
}

// SortRecords returns a stably sorted copy of records. records is not modified.
func SortRecords(records []CatalogRecord, s Strategy, titles TitleCompare) ([]CatalogRecord, error) {
	less, err := Comparator(s, titles)
	if err != nil {
		return nil, err
	}
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, less)
	return sorted, nil
}
