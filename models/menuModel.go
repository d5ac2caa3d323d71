package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MenuItem is a catalog entry. Price can be zero (comped items) but never
// negative.
type MenuItem struct {
	Name     string          `json:"name" validate:"required"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

func NewMenuItem(name, category string, price decimal.Decimal) (MenuItem, error) {
	if name == "" {
		return MenuItem{}, fmt.Errorf("%w: menu item name is required", ErrInvalidInput)
	}
	if price.IsNegative() {
		return MenuItem{}, fmt.Errorf("%w: menu item price cannot be negative", ErrInvalidInput)
	}
	return MenuItem{Name: name, Category: category, Price: price}, nil
}
