package entity

import (
	"fmt"
	"time"
)

// CustomerType distingue clientes registrados de invitados.
type CustomerType string

const (
	CustomerTypeRegistered CustomerType = "REGISTERED"
	CustomerTypeGuest      CustomerType = "GUEST"
)

// ParseCustomerType valida y convierte el string a CustomerType.
func ParseCustomerType(s string) (CustomerType, error) {
	switch CustomerType(s) {
	case CustomerTypeRegistered, CustomerTypeGuest:
		return CustomerType(s), nil
	default:
		return "", fmt.Errorf("tipo de cliente inválido: %q", s)
	}
}

// Customer representa un cliente. Pertenece a lo sumo a un Store a la vez;
// la membresía vive en la colección del Store y aquí solo queda la clave de
// búsqueda (StoreLocation) y el id del basket asignado, sin punteros cruzados.
type Customer struct {
	ID            string
	FirstName     string
	LastName      string
	Type          CustomerType
	Email         string
	Address       string
	StoreLocation *StoreLocation // nil = sin store asignado
	BasketID      string         // "" = sin basket asignado
	LastSeen      *time.Time     // nil = nunca visto / limpiado en transferencia
}

// Clone devuelve una copia desconectada del cliente; los punteros anulables
// (StoreLocation, LastSeen) se copian por valor.
func (c *Customer) Clone() *Customer {
	copied := *c
	if c.StoreLocation != nil {
		location := *c.StoreLocation
		copied.StoreLocation = &location
	}
	if c.LastSeen != nil {
		lastSeen := *c.LastSeen
		copied.LastSeen = &lastSeen
	}
	return &copied
}

// NewCustomer construye un cliente sin ubicación ni basket.
func NewCustomer(id, firstName, lastName string, customerType CustomerType, email, address string) *Customer {
	return &Customer{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Type:      customerType,
		Email:     email,
		Address:   address,
	}
}
