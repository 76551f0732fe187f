package entity

import "fmt"

// Store es la raíz del agregado físico: posee sus Aisles (y vía ellos los
// Shelves e Inventory) y mantiene colecciones de back-reference a Customers,
// Baskets y Devices cuya vida es propiedad de los registros del servicio.
type Store struct {
	ID          string
	Name        string
	Address     string
	Description string

	aisles    map[string]*Aisle
	customers map[string]*Customer
	baskets   map[string]*Basket
	devices   map[string]*Device
	inventory map[string]*Inventory
}

// NewStore construye un store vacío.
func NewStore(id, name, address string) *Store {
	return &Store{
		ID:        id,
		Name:      name,
		Address:   address,
		aisles:    make(map[string]*Aisle),
		customers: make(map[string]*Customer),
		baskets:   make(map[string]*Basket),
		devices:   make(map[string]*Device),
		inventory: make(map[string]*Inventory),
	}
}

// Clone devuelve una copia desconectada del store: los mapas internos y las
// entidades que contienen se copian, de modo que el snapshot puede leerse
// fuera de la sección crítica del servicio sin carreras con los comandos.
func (s *Store) Clone() *Store {
	c := NewStore(s.ID, s.Name, s.Address)
	c.Description = s.Description
	for number, aisle := range s.aisles {
		c.aisles[number] = aisle.Clone()
	}
	for id, customer := range s.customers {
		c.customers[id] = customer.Clone()
	}
	for id, basket := range s.baskets {
		c.baskets[id] = basket.Clone()
	}
	for id, device := range s.devices {
		copied := *device
		c.devices[id] = &copied
	}
	for id, inv := range s.inventory {
		copied := *inv
		c.inventory[id] = &copied
	}
	return c
}

// AddAisle crea y agrega un pasillo; falla si el número ya existe en el store.
func (s *Store) AddAisle(number, name, description string, location AisleLocation) (*Aisle, error) {
	if _, exists := s.aisles[number]; exists {
		return nil, fmt.Errorf("aisle %s already exists in store %s", number, s.ID)
	}
	aisle := NewAisle(number, name, description, location)
	s.aisles[number] = aisle
	return aisle, nil
}

// GetAisle devuelve el pasillo por número, o nil si no existe.
func (s *Store) GetAisle(number string) *Aisle {
	return s.aisles[number]
}

// Aisles devuelve los pasillos del store.
func (s *Store) Aisles() []*Aisle {
	out := make([]*Aisle, 0, len(s.aisles))
	for _, a := range s.aisles {
		out = append(out, a)
	}
	return out
}

// AddCustomer registra al cliente como miembro del store.
func (s *Store) AddCustomer(c *Customer) error {
	if _, exists := s.customers[c.ID]; exists {
		return fmt.Errorf("customer %s already belongs to store %s", c.ID, s.ID)
	}
	s.customers[c.ID] = c
	return nil
}

// RemoveCustomer quita al cliente de la membresía del store.
func (s *Store) RemoveCustomer(customerID string) {
	delete(s.customers, customerID)
}

// GetCustomer devuelve el cliente miembro por id, o nil.
func (s *Store) GetCustomer(customerID string) *Customer {
	return s.customers[customerID]
}

// Customers devuelve los clientes miembros.
func (s *Store) Customers() []*Customer {
	out := make([]*Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, c)
	}
	return out
}

// AddBasket registra un basket asociado al store.
func (s *Store) AddBasket(b *Basket) {
	s.baskets[b.ID] = b
}

// RemoveBasket quita la asociación del basket con el store.
func (s *Store) RemoveBasket(basketID string) {
	delete(s.baskets, basketID)
}

// Baskets devuelve los baskets asociados.
func (s *Store) Baskets() []*Basket {
	out := make([]*Basket, 0, len(s.baskets))
	for _, b := range s.baskets {
		out = append(out, b)
	}
	return out
}

// AddDevice registra un dispositivo instalado en el store.
func (s *Store) AddDevice(d *Device) {
	s.devices[d.ID] = d
}

// Devices devuelve los dispositivos instalados.
func (s *Store) Devices() []*Device {
	out := make([]*Device, 0, len(s.devices))
	for _, d := range s.devices {
		out = append(out, d)
	}
	return out
}

// AddInventory registra un slot de inventario ubicado físicamente en el store.
func (s *Store) AddInventory(inv *Inventory) {
	s.inventory[inv.ID] = inv
}

// Inventories devuelve los slots de inventario del store.
func (s *Store) Inventories() []*Inventory {
	out := make([]*Inventory, 0, len(s.inventory))
	for _, inv := range s.inventory {
		out = append(out, inv)
	}
	return out
}
