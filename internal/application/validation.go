package application

import (
	"fmt"
	"strings"

	"storefront/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "productID" -> "product ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"productID": "product ID",
		"title":     "title",
		"priceText": "price",
		"strategy":  "sort strategy",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateProduct checks that a product can be shown and added to a cart
func ValidateProduct(p domain.Product) error {
	if err := ValidateRequired("productID", p.ID); err != nil {
		return err
	}
	if err := ValidateRequired("title", p.Title); err != nil {
		return err
	}
	if _, err := p.Price(); err != nil {
		return &ValidationError{
			Field:   "priceText",
			Message: err.Error(),
		}
	}
	return nil
}
