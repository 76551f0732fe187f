package entity

import "fmt"

// InventoryType indica si el slot está en piso de venta o en bodega.
type InventoryType string

const (
	InventoryTypeOnFloor     InventoryType = "ON_FLOOR"
	InventoryTypeInStockroom InventoryType = "IN_STOCKROOM"
)

// ParseInventoryType valida y convierte el string a InventoryType.
func ParseInventoryType(s string) (InventoryType, error) {
	switch InventoryType(s) {
	case InventoryTypeOnFloor, InventoryTypeInStockroom:
		return InventoryType(s), nil
	default:
		return "", fmt.Errorf("tipo de inventario inválido: %q", s)
	}
}

// Inventory es un slot de stock que vincula un Product a una posición física
// (store, aisle, shelf) con capacidad y conteo actual.
// Invariante: 0 <= Count <= Capacity.
type Inventory struct {
	ID        string
	Location  InventoryLocation
	Capacity  int
	Count     int
	ProductID string
	Type      InventoryType
}

// NewInventory construye un slot validando el conteo inicial.
func NewInventory(id string, location InventoryLocation, capacity, count int, productID string, invType InventoryType) (*Inventory, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("capacidad negativa: %d", capacity)
	}
	if count < 0 || count > capacity {
		return nil, fmt.Errorf("conteo %d fuera de rango [0, %d]", count, capacity)
	}
	return &Inventory{
		ID:        id,
		Location:  location,
		Capacity:  capacity,
		Count:     count,
		ProductID: productID,
		Type:      invType,
	}, nil
}

// Adjust aplica un delta al conteo (positivo o negativo) respetando el
// invariante 0 <= Count <= Capacity.
func (i *Inventory) Adjust(delta int) error {
	next := i.Count + delta
	if next < 0 {
		return fmt.Errorf("el conteo no puede ser negativo (actual %d, delta %d)", i.Count, delta)
	}
	if next > i.Capacity {
		return fmt.Errorf("el conteo %d excede la capacidad %d", next, i.Capacity)
	}
	i.Count = next
	return nil
}
