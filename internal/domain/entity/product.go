package entity

import "github.com/shopspring/decimal"

// Product representa una entrada del catálogo. Independiente de cualquier
// Store: la relación física se modela vía Inventory.
type Product struct {
	ID          string
	Name        string
	Description string
	Size        string
	Category    string
	Price       decimal.Decimal
	Temperature Temperature
}

// NewProduct construye un producto de catálogo.
func NewProduct(id, name, description, size, category string, price decimal.Decimal, temperature Temperature) *Product {
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Size:        size,
		Category:    category,
		Price:       price,
		Temperature: temperature,
	}
}
