package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/store-api/internal/domain/entity"
)

// CreateProductRequest entrada para aprovisionar un producto.
type CreateProductRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Size        string          `json:"size"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Temperature string          `json:"temperature" validate:"required"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Size        string          `json:"size,omitempty"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Temperature string          `json:"temperature"`
}

// CreateInventoryRequest entrada para aprovisionar un slot de inventario.
type CreateInventoryRequest struct {
	InventoryID string `json:"inventory_id" validate:"required"`
	StoreID     string `json:"store_id" validate:"required"`
	AisleNumber string `json:"aisle_number" validate:"required"`
	ShelfID     string `json:"shelf_id" validate:"required"`
	Capacity    int    `json:"capacity" validate:"min=0"`
	Count       int    `json:"count" validate:"min=0"`
	ProductID   string `json:"product_id" validate:"required"`
	Type        string `json:"type" validate:"required"` // ON_FLOOR | IN_STOCKROOM
}

// UpdateInventoryRequest delta a aplicar al conteo (positivo o negativo).
type UpdateInventoryRequest struct {
	Delta int `json:"delta"`
}

// InventoryResponse salida de un slot de inventario.
type InventoryResponse struct {
	ID          string `json:"id"`
	StoreID     string `json:"store_id"`
	AisleNumber string `json:"aisle_number"`
	ShelfID     string `json:"shelf_id"`
	Capacity    int    `json:"capacity"`
	Count       int    `json:"count"`
	ProductID   string `json:"product_id"`
	Type        string `json:"type"`
}

// ToProductResponse mapea la entidad al contrato externo.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Size:        p.Size,
		Category:    p.Category,
		Price:       p.Price,
		Temperature: string(p.Temperature),
	}
}

// ToInventoryResponse mapea la entidad al contrato externo.
func ToInventoryResponse(inv *entity.Inventory) *InventoryResponse {
	if inv == nil {
		return nil
	}
	return &InventoryResponse{
		ID:          inv.ID,
		StoreID:     inv.Location.StoreID,
		AisleNumber: inv.Location.AisleNumber,
		ShelfID:     inv.Location.ShelfID,
		Capacity:    inv.Capacity,
		Count:       inv.Count,
		ProductID:   inv.ProductID,
		Type:        string(inv.Type),
	}
}
