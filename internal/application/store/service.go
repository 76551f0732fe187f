// Package store implementa el núcleo de orquestación del sistema: los
// registros de entidades en memoria y la superficie completa de comandos
// (provision/show/update/delete) con sus invariantes entre entidades.
package store

import (
	"sync"

	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
	"github.com/jhoicas/store-api/pkg/logger"
)

// Service posee los seis registros keyed por id y el colaborador de
// persistencia. Todo acceso pasa por un único mutex grueso: las secuencias
// check-then-insert y la llamada sincrónica de persistencia ocurren dentro de
// la misma sección crítica, de modo que dos provisiones concurrentes del
// mismo id no pueden intercalarse.
//
// Asimetría deliberada: las operaciones de creación NO revierten la mutación
// en memoria si la persistencia falla (el estado en memoria queda por delante
// del persistido); solo DeleteStore compensa reinsertando el store.
type Service struct {
	mu sync.Mutex

	stores    map[string]*entity.Store
	customers map[string]*entity.Customer
	products  map[string]*entity.Product
	inventory map[string]*entity.Inventory
	baskets   map[string]*entity.Basket
	devices   map[string]*entity.Device

	data repository.StoreDataStore // nil = sin persistencia (tests, CLI local)
	log  *logger.Logger
}

// New construye el servicio. Si data no es nil, carga los snapshots iniciales
// desde el colaborador; un fallo de carga se devuelve al llamador.
func New(data repository.StoreDataStore, log *logger.Logger) (*Service, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &Service{
		stores:    make(map[string]*entity.Store),
		customers: make(map[string]*entity.Customer),
		products:  make(map[string]*entity.Product),
		inventory: make(map[string]*entity.Inventory),
		baskets:   make(map[string]*entity.Basket),
		devices:   make(map[string]*entity.Device),
		data:      data,
		log:       log,
	}
	if data != nil {
		if err := s.loadAll(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// loadAll puebla los registros desde los snapshots del colaborador. Las filas
// de clientes restauran StoreLocation y re-adjuntan al store; un fallo de
// adjunción se loguea y se omite (no fatal).
func (s *Service) loadAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearAllLocked()

	storeRecs, err := s.data.FindAllStores()
	if err != nil {
		return domain.Persistence("Load All", "Failed to load Stores from database", err)
	}
	for _, rec := range storeRecs {
		if rec.ID == "" {
			continue
		}
		st := entity.NewStore(rec.ID, rec.Name, rec.Address)
		st.Description = rec.Description
		s.stores[rec.ID] = st
	}

	productRecs, err := s.data.FindAllProducts()
	if err != nil {
		return domain.Persistence("Load All", "Failed to load Products from database", err)
	}
	for _, rec := range productRecs {
		if rec.ID == "" {
			continue
		}
		temperature, err := entity.ParseTemperature(rec.Temperature)
		if err != nil {
			return domain.Persistence("Load All", "Failed to load Products from database", err)
		}
		s.products[rec.ID] = entity.NewProduct(rec.ID, rec.Name, rec.Description,
			rec.Size, rec.Category, rec.Price, temperature)
	}

	customerRecs, err := s.data.FindAllCustomers()
	if err != nil {
		return domain.Persistence("Load All", "Failed to load Customers from database", err)
	}
	for _, rec := range customerRecs {
		if rec.ID == "" {
			continue
		}
		customerType, err := entity.ParseCustomerType(rec.Type)
		if err != nil {
			return domain.Persistence("Load All", "Failed to load Customers from database", err)
		}
		customer := entity.NewCustomer(rec.ID, rec.FirstName, rec.LastName,
			customerType, rec.Email, rec.Address)
		customer.LastSeen = rec.LastSeen

		if rec.StoreID != nil && *rec.StoreID != "" {
			if st, ok := s.stores[*rec.StoreID]; ok {
				aisleNumber := ""
				if rec.AisleNumber != nil {
					aisleNumber = *rec.AisleNumber
				}
				location := entity.NewStoreLocation(*rec.StoreID, aisleNumber)
				customer.StoreLocation = &location
				if err := st.AddCustomer(customer); err != nil {
					s.log.Warn().
						Str("customer_id", rec.ID).
						Str("store_id", *rec.StoreID).
						Err(err).
						Msg("no se pudo re-adjuntar el cliente al store; se omite")
				}
			}
		}
		s.customers[rec.ID] = customer
	}

	return nil
}

// ClearAll vacía los seis registros. Pensado solo para tests y reset; no
// ofrece protección frente a operaciones en vuelo más allá del mutex.
func (s *Service) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearAllLocked()
}

func (s *Service) clearAllLocked() {
	s.stores = make(map[string]*entity.Store)
	s.customers = make(map[string]*entity.Customer)
	s.products = make(map[string]*entity.Product)
	s.inventory = make(map[string]*entity.Inventory)
	s.baskets = make(map[string]*entity.Basket)
	s.devices = make(map[string]*entity.Device)
}

// StoreExists indica si un store está registrado. Lo consulta el adaptador de
// autorización; el core no hace chequeos de identidad.
func (s *Service) StoreExists(storeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.stores[storeID]
	return ok
}
