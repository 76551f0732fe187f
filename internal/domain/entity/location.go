package entity

// StoreLocation identifica una posición (store, aisle) dentro de la cadena.
// Value object inmutable: solo igualdad y accesores.
type StoreLocation struct {
	StoreID     string
	AisleNumber string
}

// NewStoreLocation construye la ubicación.
func NewStoreLocation(storeID, aisleNumber string) StoreLocation {
	return StoreLocation{StoreID: storeID, AisleNumber: aisleNumber}
}

// InventoryLocation identifica la posición física de un slot de inventario
// (store, aisle, shelf).
type InventoryLocation struct {
	StoreID     string
	AisleNumber string
	ShelfID     string
}

// NewInventoryLocation construye la ubicación.
func NewInventoryLocation(storeID, aisleNumber, shelfID string) InventoryLocation {
	return InventoryLocation{StoreID: storeID, AisleNumber: aisleNumber, ShelfID: shelfID}
}
