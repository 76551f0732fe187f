package store

import (
	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

// ProvisionStore crea un store. Falla con Conflict si el id ya existe; si la
// persistencia falla el store permanece en el registro (sin rollback).
func (s *Service) ProvisionStore(storeID, name, address string) (*entity.Store, error) {
	const op = "Provision Store"
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.stores[storeID]; exists {
		return nil, domain.Conflict(op, "Store")
	}
	st := entity.NewStore(storeID, name, address)
	s.stores[storeID] = st

	if s.data != nil {
		if err := s.data.SaveStore(storeRecord(st)); err != nil {
			return nil, domain.Persistence(op, "Failed to save Store to database", err)
		}
	}
	return st.Clone(), nil
}

// ShowStore devuelve un snapshot del store por id.
func (s *Service) ShowStore(storeID string) (*entity.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stores[storeID]
	if !ok {
		return nil, domain.NotFound("Show Store", "Store")
	}
	return st.Clone(), nil
}

// GetAllStores devuelve snapshots de todos los stores registrados.
func (s *Service) GetAllStores() []*entity.Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Store, 0, len(s.stores))
	for _, st := range s.stores {
		out = append(out, st.Clone())
	}
	return out
}

// UpdateStore muta descripción y dirección in place; los argumentos nil no
// sobreescriben. Persiste el resultado.
func (s *Service) UpdateStore(storeID string, description, address *string) (*entity.Store, error) {
	const op = "Update Store"
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stores[storeID]
	if !ok {
		return nil, domain.NotFound(op, "Store")
	}
	if description != nil {
		st.Description = *description
	}
	if address != nil {
		st.Address = *address
	}

	if s.data != nil {
		if err := s.data.SaveStore(storeRecord(st)); err != nil {
			return nil, domain.Persistence(op, "Failed to update Store in database", err)
		}
	}
	return st.Clone(), nil
}

// DeleteStore quita el store del registro y luego borra la fila. Es el único
// punto del core con rollback compensatorio: si el colaborador reporta que la
// fila no existía o falla, el store se reinserta en el registro.
func (s *Service) DeleteStore(storeID string) error {
	const op = "Delete Store"
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stores[storeID]
	if !ok {
		return domain.NotFound(op, "Store")
	}
	delete(s.stores, storeID)

	if s.data != nil {
		found, err := s.data.DeleteStore(storeID)
		if err != nil {
			s.stores[storeID] = st
			return domain.Persistence(op, "Database error while deleting store", err)
		}
		if !found {
			s.stores[storeID] = st
			return domain.Persistence(op, "Failed to delete store from database (store not found in DB)", nil)
		}
	}
	return nil
}

// ProvisionAisle crea un pasillo dentro de un store existente. Los pasillos
// viven solo en memoria: el colaborador de persistencia no los modela.
func (s *Service) ProvisionAisle(storeID, aisleNumber, name, description string, location entity.AisleLocation) (*entity.Aisle, error) {
	const op = "Provision Aisle"
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stores[storeID]
	if !ok {
		return nil, domain.NotFound(op, "Store")
	}
	if st.GetAisle(aisleNumber) != nil {
		return nil, domain.Conflict(op, "Aisle")
	}
	aisle, err := st.AddAisle(aisleNumber, name, description, location)
	if err != nil {
		return nil, domain.Conflict(op, "Aisle")
	}
	return aisle.Clone(), nil
}

// ShowAisle devuelve el pasillo por (store, número).
func (s *Service) ShowAisle(storeID, aisleNumber string) (*entity.Aisle, error) {
	const op = "Show Aisle"
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stores[storeID]
	if !ok {
		return nil, domain.NotFound(op, "Store")
	}
	aisle := st.GetAisle(aisleNumber)
	if aisle == nil {
		return nil, domain.NotFound(op, "Aisle")
	}
	return aisle.Clone(), nil
}

// ProvisionShelf crea un estante dentro de un pasillo existente.
func (s *Service) ProvisionShelf(storeID, aisleNumber, shelfID, name string, level entity.ShelfLevel, description string, temperature entity.Temperature) (*entity.Shelf, error) {
	const op = "Provision Shelf"
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stores[storeID]
	if !ok {
		return nil, domain.NotFound(op, "Store")
	}
	aisle := st.GetAisle(aisleNumber)
	if aisle == nil {
		return nil, domain.NotFound(op, "Aisle")
	}
	if aisle.GetShelf(shelfID) != nil {
		return nil, domain.Conflict(op, "Shelf")
	}
	return aisle.AddShelf(shelfID, name, level, description, temperature).Clone(), nil
}

// ShowShelf devuelve el estante por (store, pasillo, id).
func (s *Service) ShowShelf(storeID, aisleNumber, shelfID string) (*entity.Shelf, error) {
	const op = "Show Shelf"
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stores[storeID]
	if !ok {
		return nil, domain.NotFound(op, "Store")
	}
	aisle := st.GetAisle(aisleNumber)
	if aisle == nil {
		return nil, domain.NotFound(op, "Aisle")
	}
	shelf := aisle.GetShelf(shelfID)
	if shelf == nil {
		return nil, domain.NotFound(op, "Shelf")
	}
	return shelf.Clone(), nil
}

func storeRecord(st *entity.Store) repository.StoreRecord {
	return repository.StoreRecord{
		ID:          st.ID,
		Name:        st.Name,
		Address:     st.Address,
		Description: st.Description,
	}
}
