package store

import (
	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

// ProvisionBasket crea un basket sin asignar.
func (s *Service) ProvisionBasket(basketID string) (*entity.Basket, error) {
	const op = "Provision Basket"
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.baskets[basketID]; exists {
		return nil, domain.Conflict(op, "Basket")
	}
	basket := entity.NewBasket(basketID)
	s.baskets[basketID] = basket

	if s.data != nil {
		if err := s.data.SaveBasket(basketRecord(basket)); err != nil {
			return nil, domain.Persistence(op, "Failed to save Basket to database", err)
		}
	}
	return basket.Clone(), nil
}

// AssignCustomerBasket crea el vínculo bidireccional basket↔cliente↔store.
// El store se resuelve desde la StoreLocation del propio cliente; un cliente
// sin ubicación falla explícitamente en lugar de dejar el vínculo a medias.
func (s *Service) AssignCustomerBasket(customerID, basketID string) (*entity.Basket, error) {
	const op = "Assign Customer Basket"
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[customerID]
	if !ok {
		return nil, domain.NotFound(op, "Customer")
	}
	basket, ok := s.baskets[basketID]
	if !ok {
		return nil, domain.NotFound(op, "Basket")
	}
	if customer.StoreLocation == nil {
		return nil, domain.Precondition(op, "Customer Has No Store Location")
	}
	st, ok := s.stores[customer.StoreLocation.StoreID]
	if !ok {
		return nil, domain.NotFound(op, "Store")
	}

	// Ambos lados del vínculo se actualizan en la misma sección crítica.
	customer.BasketID = basketID
	basket.CustomerID = customerID
	basket.StoreID = st.ID
	st.AddBasket(basket)

	if s.data != nil {
		if err := s.data.SaveBasket(basketRecord(basket)); err != nil {
			return nil, domain.Persistence(op, "Failed to save Basket to database", err)
		}
	}
	return basket.Clone(), nil
}

// GetCustomerBasket devuelve el basket asignado al cliente.
func (s *Service) GetCustomerBasket(customerID string) (*entity.Basket, error) {
	const op = "Get Customer Basket"
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[customerID]
	if !ok {
		return nil, domain.NotFound(op, "Customer")
	}
	if customer.BasketID == "" {
		return nil, &domain.StoreError{Op: op, Kind: domain.KindNotFound, Reason: "Customer Does Not Have a Basket"}
	}
	basket, ok := s.baskets[customer.BasketID]
	if !ok {
		return nil, domain.NotFound(op, "Basket")
	}
	return basket.Clone(), nil
}

// AddBasketProduct agrega count unidades de un producto al basket. El basket
// debe existir y estar asignado a un cliente; un basket sin asignar no puede
// acumular items.
func (s *Service) AddBasketProduct(basketID, productID string, count int) (*entity.Basket, error) {
	const op = "Add Basket Product"
	s.mu.Lock()
	defer s.mu.Unlock()

	basket, ok := s.baskets[basketID]
	if !ok {
		return nil, domain.NotFound(op, "Basket")
	}
	if _, ok := s.products[productID]; !ok {
		return nil, domain.NotFound(op, "Product")
	}
	if !basket.Assigned() {
		return nil, domain.Precondition(op, "Basket Has Not Being Assigned")
	}
	basket.AddProduct(productID, count)
	return basket.Clone(), nil
}

// RemoveBasketProduct quita count unidades de un producto del basket.
func (s *Service) RemoveBasketProduct(basketID, productID string, count int) (*entity.Basket, error) {
	const op = "Remove Basket Product"
	s.mu.Lock()
	defer s.mu.Unlock()

	basket, ok := s.baskets[basketID]
	if !ok {
		return nil, domain.NotFound(op, "Basket")
	}
	if _, ok := s.products[productID]; !ok {
		return nil, domain.NotFound(op, "Product")
	}
	if !basket.Assigned() {
		return nil, domain.Precondition(op, "Basket Has Not Being Assigned")
	}
	basket.RemoveProduct(productID, count)
	return basket.Clone(), nil
}

// ClearBasket vacía el contenido del basket; requiere basket asignado.
func (s *Service) ClearBasket(basketID string) (*entity.Basket, error) {
	const op = "Clear Basket"
	s.mu.Lock()
	defer s.mu.Unlock()

	basket, ok := s.baskets[basketID]
	if !ok {
		return nil, domain.NotFound(op, "Basket")
	}
	if !basket.Assigned() {
		return nil, domain.Precondition(op, "Basket Has Not Being Assigned")
	}
	basket.Clear()
	return basket.Clone(), nil
}

// ShowBasket devuelve el basket por id. Intencionalmente permite ver baskets
// sin asignar (la única operación de basket que no exige asignación).
func (s *Service) ShowBasket(basketID string) (*entity.Basket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	basket, ok := s.baskets[basketID]
	if !ok {
		return nil, domain.NotFound("Show Basket", "Basket")
	}
	return basket.Clone(), nil
}

func basketRecord(b *entity.Basket) repository.BasketRecord {
	rec := repository.BasketRecord{ID: b.ID}
	if b.CustomerID != "" {
		customerID := b.CustomerID
		rec.CustomerID = &customerID
	}
	if b.StoreID != "" {
		storeID := b.StoreID
		rec.StoreID = &storeID
	}
	return rec
}
