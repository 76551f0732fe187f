package entity

import "fmt"

// AisleLocation indica si el pasillo está en piso de venta o en bodega.
type AisleLocation string

const (
	AisleLocationFloor     AisleLocation = "FLOOR"
	AisleLocationStockroom AisleLocation = "STOCKROOM"
)

// ParseAisleLocation valida y convierte el string a AisleLocation.
func ParseAisleLocation(s string) (AisleLocation, error) {
	switch AisleLocation(s) {
	case AisleLocationFloor, AisleLocationStockroom:
		return AisleLocation(s), nil
	default:
		return "", fmt.Errorf("ubicación de pasillo inválida: %q", s)
	}
}

// Aisle es una subdivisión física de un Store; posee sus Shelves.
// El número es único dentro del Store propietario.
type Aisle struct {
	Number      string
	Name        string
	Description string
	Location    AisleLocation

	shelves map[string]*Shelf
}

// NewAisle construye un pasillo vacío.
func NewAisle(number, name, description string, location AisleLocation) *Aisle {
	return &Aisle{
		Number:      number,
		Name:        name,
		Description: description,
		Location:    location,
		shelves:     make(map[string]*Shelf),
	}
}

// Clone devuelve una copia desconectada del pasillo y sus shelves.
func (a *Aisle) Clone() *Aisle {
	c := NewAisle(a.Number, a.Name, a.Description, a.Location)
	for id, shelf := range a.shelves {
		c.shelves[id] = shelf.Clone()
	}
	return c
}

// GetShelf devuelve el shelf por id, o nil si no existe.
func (a *Aisle) GetShelf(shelfID string) *Shelf {
	return a.shelves[shelfID]
}

// AddShelf crea y agrega un shelf al pasillo. El llamador valida unicidad antes.
func (a *Aisle) AddShelf(shelfID, name string, level ShelfLevel, description string, temperature Temperature) *Shelf {
	shelf := NewShelf(shelfID, name, level, description, temperature)
	a.shelves[shelfID] = shelf
	return shelf
}

// Shelves devuelve los shelves del pasillo.
func (a *Aisle) Shelves() []*Shelf {
	out := make([]*Shelf, 0, len(a.shelves))
	for _, s := range a.shelves {
		out = append(out, s)
	}
	return out
}
