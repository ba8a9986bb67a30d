package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"storefront/internal/application"
	"storefront/internal/domain"
	"storefront/internal/ports"
)

// SortResult contains the result of a sort pass
type SortResult struct {
	Strategy domain.Strategy
	Order    []string // node IDs in their new display order
	Skipped  []error  // items whose price could not be read; they sort last
	Message  string
}

// SortCatalogCommand reorders the nodes on a shelf by a named strategy
type SortCatalogCommand struct {
	shelf    ports.Shelf
	collator ports.TitleCollator
	logger   *zap.Logger
	Strategy string
}

// NewSortCatalogCommand creates a new SortCatalogCommand. collator may be nil,
// in which case titles compare byte-wise.
func NewSortCatalogCommand(shelf ports.Shelf, collator ports.TitleCollator, logger *zap.Logger, strategy string) *SortCatalogCommand {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SortCatalogCommand{
		shelf:    shelf,
		collator: collator,
		logger:   logger,
		Strategy: strategy,
	}
}

// Execute runs the sort pass. An unknown strategy is rejected before any node
// is detached; the shelf is never left partially detached.
func (c *SortCatalogCommand) Execute(ctx context.Context) (*SortResult, error) {
	strategy, err := domain.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}

	var titles domain.TitleCompare
	if c.collator != nil {
		titles = c.collator.Compare
	}
	// resolve the comparator before touching the shelf
	if _, err := domain.Comparator(strategy, titles); err != nil {
		return nil, err
	}

	snap, err := application.Extract(c.shelf)
	if err != nil {
		return nil, &application.SortError{Strategy: strategy, Err: err}
	}

	sorted, err := domain.SortRecords(snap.Records, strategy, titles)
	if err != nil {
		snap.Restore(c.shelf)
		return nil, &application.SortError{Strategy: strategy, Err: err}
	}
	snap.Reattach(c.shelf, sorted)

	for _, perr := range snap.PriceErrs {
		c.logger.Warn("unreadable price, sorted last", zap.Error(perr))
	}

	result := &SortResult{
		Strategy: strategy,
		Order:    make([]string, 0, len(sorted)),
		Skipped:  snap.PriceErrs,
		Message:  fmt.Sprintf("Sorted %d items by %s", len(sorted), strategy.Label()),
	}
	for _, rec := range sorted {
		result.Order = append(result.Order, snap.Detached[rec.Index].ID())
	}

	c.logger.Debug("catalog sorted",
		zap.String("strategy", string(strategy)),
		zap.Int("items", len(sorted)),
		zap.Int("unpriced", len(snap.PriceErrs)),
	)

	return result, nil
}
