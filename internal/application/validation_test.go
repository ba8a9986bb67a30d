package application

import (
	"errors"
	"testing"

	"storefront/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "title",
			value:     "Yerba 1kg",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "title",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "productID",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateRequired_Message(t *testing.T) {
	err := ValidateRequired("productID", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "productID: product ID is required" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name      string
		product   domain.Product
		wantField string
	}{
		{
			name:    "valid",
			product: domain.Product{ID: "p1", Title: "Mate", PriceText: "$100"},
		},
		{
			name:      "missing id",
			product:   domain.Product{Title: "Mate", PriceText: "$100"},
			wantField: "productID",
		},
		{
			name:      "missing title",
			product:   domain.Product{ID: "p1", PriceText: "$100"},
			wantField: "title",
		},
		{
			name:      "bad price",
			product:   domain.Product{ID: "p1", Title: "Mate", PriceText: "cien"},
			wantField: "priceText",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProduct(tt.product)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %T (%v)", err, err)
			}
			if valErr.Field != tt.wantField {
				t.Errorf("expected field %s, got %s", tt.wantField, valErr.Field)
			}
		})
	}
}
