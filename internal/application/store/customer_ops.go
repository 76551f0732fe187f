package store

import (
	"time"

	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

// ProvisionCustomer crea un cliente sin store ni basket asignados.
func (s *Service) ProvisionCustomer(customerID, firstName, lastName string, customerType entity.CustomerType, email, address string) (*entity.Customer, error) {
	const op = "Provision Customer"
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.customers[customerID]; exists {
		return nil, domain.Conflict(op, "Customer")
	}
	customer := entity.NewCustomer(customerID, firstName, lastName, customerType, email, address)
	s.customers[customerID] = customer

	if s.data != nil {
		if err := s.data.SaveCustomer(customerRecord(customer)); err != nil {
			return nil, domain.Persistence(op, "Failed to save Customer to database", err)
		}
	}
	return customer.Clone(), nil
}

// UpdateCustomer implementa la semántica de transferencia de store:
//
// Si el cliente ya tiene ubicación en un store distinto, se lo quita de la
// membresía de todo store que lo liste, se vacía y desasigna su basket, se
// limpia LastSeen y se lo adjunta al store destino. En caso contrario
// (primera asignación o movimiento dentro del mismo store) solo se actualiza
// la ubicación y se sella LastSeen con la hora actual.
func (s *Service) UpdateCustomer(customerID, storeID, aisleNumber string) (*entity.Customer, error) {
	const op = "Update Customer"
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.stores[storeID]
	if !ok {
		return nil, domain.NotFound(op, "Store")
	}
	if target.GetAisle(aisleNumber) == nil {
		return nil, domain.NotFound(op, "Aisle")
	}
	customer, ok := s.customers[customerID]
	if !ok {
		return nil, domain.NotFound(op, "Customer")
	}

	location := entity.NewStoreLocation(storeID, aisleNumber)

	if customer.StoreLocation != nil && customer.StoreLocation.StoreID != storeID {
		// Transferencia: quitar de todo store que lo liste como miembro.
		for _, st := range s.stores {
			if st.GetCustomer(customerID) != nil {
				st.RemoveCustomer(customerID)
			}
		}

		// Antes de cambiar de store el basket se vacía y se desasigna.
		if customer.BasketID != "" {
			if basket, ok := s.baskets[customer.BasketID]; ok {
				basket.Clear()
				basket.CustomerID = ""
				if basket.StoreID != "" {
					if prev, ok := s.stores[basket.StoreID]; ok {
						prev.RemoveBasket(basket.ID)
					}
					basket.StoreID = ""
				}
			}
			customer.BasketID = ""
		}

		customer.LastSeen = nil
		customer.StoreLocation = &location
		if err := target.AddCustomer(customer); err != nil {
			// El cliente ya fue removido de toda membresía arriba.
			return nil, domain.Conflict(op, "Customer")
		}
	} else {
		customer.StoreLocation = &location
		now := time.Now()
		customer.LastSeen = &now
	}

	if s.data != nil {
		if err := s.data.SaveCustomer(customerRecord(customer)); err != nil {
			return nil, domain.Persistence(op, "Failed to update Customer in database", err)
		}
	}
	return customer.Clone(), nil
}

// ShowCustomer devuelve un snapshot del cliente por id.
func (s *Service) ShowCustomer(customerID string) (*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[customerID]
	if !ok {
		return nil, domain.NotFound("Show Customer", "Customer")
	}
	return customer.Clone(), nil
}

func customerRecord(c *entity.Customer) repository.CustomerRecord {
	rec := repository.CustomerRecord{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Type:      string(c.Type),
		Email:     c.Email,
		Address:   c.Address,
		LastSeen:  c.LastSeen,
	}
	if c.StoreLocation != nil {
		storeID := c.StoreLocation.StoreID
		aisleNumber := c.StoreLocation.AisleNumber
		rec.StoreID = &storeID
		rec.AisleNumber = &aisleNumber
	}
	return rec
}
