package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// StoreRecord fila denormalizada de un store.
type StoreRecord struct {
	ID          string
	Name        string
	Address     string
	Description string
}

// ProductRecord fila denormalizada de un producto.
type ProductRecord struct {
	ID          string
	Name        string
	Description string
	Size        string
	Category    string
	Price       decimal.Decimal
	Temperature string
}

// CustomerRecord fila denormalizada de un cliente. StoreID/AisleNumber y
// LastSeen son anulables: un cliente puede no tener store asignado.
type CustomerRecord struct {
	ID          string
	FirstName   string
	LastName    string
	Type        string
	Email       string
	Address     string
	StoreID     *string
	AisleNumber *string
	LastSeen    *time.Time
}

// InventoryRecord fila denormalizada de un slot de inventario con su
// ubicación resuelta.
type InventoryRecord struct {
	ID          string
	StoreID     string
	AisleNumber string
	ShelfID     string
	Capacity    int
	Count       int
	ProductID   string
	Type        string
}

// BasketRecord fila denormalizada de un basket; cliente y store anulables.
type BasketRecord struct {
	ID         string
	CustomerID *string
	StoreID    *string
}

// DeviceRecord fila denormalizada de un dispositivo.
type DeviceRecord struct {
	ID          string
	Name        string
	Type        string
	StoreID     string
	AisleNumber string
}

// StoreDataStore es el colaborador de persistencia que el servicio consume
// (no posee): snapshots completos al arranque, upserts sincrónicos por
// entidad y borrado de stores con señal found/not-found.
//
// Las llamadas son bloqueantes y sin timeout propio; cualquier política de
// reintento o cancelación pertenece al adaptador, no al core.
type StoreDataStore interface {
	// Carga masiva usada una sola vez al arranque.
	FindAllStores() ([]StoreRecord, error)
	FindAllProducts() ([]ProductRecord, error)
	FindAllCustomers() ([]CustomerRecord, error)

	// Upserts con el conjunto completo de atributos de la entidad.
	SaveStore(rec StoreRecord) error
	SaveProduct(rec ProductRecord) error
	SaveCustomer(rec CustomerRecord) error
	SaveInventory(rec InventoryRecord) error
	SaveBasket(rec BasketRecord) error
	SaveDevice(rec DeviceRecord) error

	// DeleteStore borra la fila; found=false si no existía.
	DeleteStore(id string) (found bool, err error)
}
