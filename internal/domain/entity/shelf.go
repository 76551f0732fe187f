package entity

import "fmt"

// ShelfLevel altura del estante dentro del pasillo.
type ShelfLevel string

const (
	ShelfLevelHigh   ShelfLevel = "HIGH"
	ShelfLevelMedium ShelfLevel = "MEDIUM"
	ShelfLevelLow    ShelfLevel = "LOW"
)

// ParseShelfLevel valida y convierte el string a ShelfLevel.
func ParseShelfLevel(s string) (ShelfLevel, error) {
	switch ShelfLevel(s) {
	case ShelfLevelHigh, ShelfLevelMedium, ShelfLevelLow:
		return ShelfLevel(s), nil
	default:
		return "", fmt.Errorf("nivel de estante inválido: %q", s)
	}
}

// Shelf es un estante dentro de un Aisle. Lleva la clase de temperatura que
// gobierna qué productos pueden ocuparlo, y posee sus slots de Inventory.
type Shelf struct {
	ID          string
	Name        string
	Level       ShelfLevel
	Description string
	Temperature Temperature

	inventory map[string]*Inventory
}

// NewShelf construye un estante vacío.
func NewShelf(id, name string, level ShelfLevel, description string, temperature Temperature) *Shelf {
	return &Shelf{
		ID:          id,
		Name:        name,
		Level:       level,
		Description: description,
		Temperature: temperature,
		inventory:   make(map[string]*Inventory),
	}
}

// Clone devuelve una copia desconectada del estante y sus slots.
func (s *Shelf) Clone() *Shelf {
	c := NewShelf(s.ID, s.Name, s.Level, s.Description, s.Temperature)
	for id, inv := range s.inventory {
		copied := *inv
		c.inventory[id] = &copied
	}
	return c
}

// AddInventory agrega un slot de inventario al estante. El llamador valida
// unicidad y consistencia de temperatura antes.
func (s *Shelf) AddInventory(inv *Inventory) {
	s.inventory[inv.ID] = inv
}

// GetInventory devuelve el slot por id, o nil si no existe.
func (s *Shelf) GetInventory(inventoryID string) *Inventory {
	return s.inventory[inventoryID]
}

// Inventories devuelve los slots del estante.
func (s *Shelf) Inventories() []*Inventory {
	out := make([]*Inventory, 0, len(s.inventory))
	for _, inv := range s.inventory {
		out = append(out, inv)
	}
	return out
}
