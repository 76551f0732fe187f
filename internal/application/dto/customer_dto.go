package dto

import (
	"time"

	"github.com/jhoicas/store-api/internal/domain/entity"
)

// CreateCustomerRequest entrada para aprovisionar un cliente.
type CreateCustomerRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Type       string `json:"type" validate:"required"` // REGISTERED | GUEST
	Email      string `json:"email"`
	Address    string `json:"address"`
}

// UpdateCustomerRequest entrada para mover/asignar el cliente a un store.
type UpdateCustomerRequest struct {
	StoreID     string `json:"store_id" validate:"required"`
	AisleNumber string `json:"aisle_number" validate:"required"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Type        string     `json:"type"`
	Email       string     `json:"email,omitempty"`
	Address     string     `json:"address,omitempty"`
	StoreID     string     `json:"store_id,omitempty"`
	AisleNumber string     `json:"aisle_number,omitempty"`
	BasketID    string     `json:"basket_id,omitempty"`
	LastSeen    *time.Time `json:"last_seen,omitempty"`
}

// BasketResponse salida de un basket con su contenido.
type BasketResponse struct {
	ID         string         `json:"id"`
	CustomerID string         `json:"customer_id,omitempty"`
	StoreID    string         `json:"store_id,omitempty"`
	Items      map[string]int `json:"items"`
}

// BasketItemRequest entrada para agregar/quitar productos del basket.
type BasketItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Count     int    `json:"count" validate:"min=1"`
}

// ToCustomerResponse mapea la entidad al contrato externo.
func ToCustomerResponse(c *entity.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	out := &CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Type:      string(c.Type),
		Email:     c.Email,
		Address:   c.Address,
		BasketID:  c.BasketID,
		LastSeen:  c.LastSeen,
	}
	if c.StoreLocation != nil {
		out.StoreID = c.StoreLocation.StoreID
		out.AisleNumber = c.StoreLocation.AisleNumber
	}
	return out
}

// ToBasketResponse mapea la entidad al contrato externo.
func ToBasketResponse(b *entity.Basket) *BasketResponse {
	if b == nil {
		return nil
	}
	return &BasketResponse{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		StoreID:    b.StoreID,
		Items:      b.Items(),
	}
}
