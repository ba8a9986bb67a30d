package application

import (
	"errors"
	"fmt"

	"storefront/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound         = domain.ErrProductNotFound
	ErrUnknownStrategy  = domain.ErrUnknownStrategy
	ErrInvalidPriceText = domain.ErrInvalidPriceText
	ErrInvalidOperation = errors.New("invalid operation")
	ErrSortFailed       = errors.New("sort failed")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SortError reports a sort pass that had to be rolled back after nodes were
// detached. The shelf is back in its original order when this is returned.
type SortError struct {
	Strategy domain.Strategy
	Err      error
}

func (e *SortError) Error() string {
	return fmt.Sprintf("cannot sort by %s: %v", e.Strategy, e.Err)
}

func (e *SortError) Unwrap() error {
	return e.Err
}

func (e *SortError) Is(target error) bool {
	return target == ErrSortFailed
}
