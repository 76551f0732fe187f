package dto

import "github.com/jhoicas/store-api/internal/domain/entity"

// CreateStoreRequest entrada para aprovisionar un store.
type CreateStoreRequest struct {
	StoreID string `json:"store_id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// UpdateStoreRequest entrada para actualizar un store (campos nil no tocan).
type UpdateStoreRequest struct {
	Description *string `json:"description"`
	Address     *string `json:"address"`
}

// StoreResponse salida de un store. Excluye las colecciones anidadas para
// mantener el contrato externo plano; se exponen solo conteos.
type StoreResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	Description   string `json:"description,omitempty"`
	AisleCount    int    `json:"aisle_count"`
	CustomerCount int    `json:"customer_count"`
	DeviceCount   int    `json:"device_count"`
}

// CreateAisleRequest entrada para aprovisionar un pasillo.
type CreateAisleRequest struct {
	Number      string `json:"number" validate:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location" validate:"required"` // FLOOR | STOCKROOM
}

// AisleResponse salida de un pasillo.
type AisleResponse struct {
	Number      string `json:"number"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location"`
	ShelfCount  int    `json:"shelf_count"`
}

// CreateShelfRequest entrada para aprovisionar un estante.
type CreateShelfRequest struct {
	ShelfID     string `json:"shelf_id" validate:"required"`
	Name        string `json:"name"`
	Level       string `json:"level" validate:"required"`       // HIGH | MEDIUM | LOW
	Description string `json:"description"`
	Temperature string `json:"temperature" validate:"required"` // FROZEN..HOT
}

// ShelfResponse salida de un estante.
type ShelfResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Level       string `json:"level"`
	Description string `json:"description,omitempty"`
	Temperature string `json:"temperature"`
}

// ToStoreResponse mapea la entidad al contrato externo.
func ToStoreResponse(st *entity.Store) *StoreResponse {
	if st == nil {
		return nil
	}
	return &StoreResponse{
		ID:            st.ID,
		Name:          st.Name,
		Address:       st.Address,
		Description:   st.Description,
		AisleCount:    len(st.Aisles()),
		CustomerCount: len(st.Customers()),
		DeviceCount:   len(st.Devices()),
	}
}

// ToAisleResponse mapea la entidad al contrato externo.
func ToAisleResponse(a *entity.Aisle) *AisleResponse {
	if a == nil {
		return nil
	}
	return &AisleResponse{
		Number:      a.Number,
		Name:        a.Name,
		Description: a.Description,
		Location:    string(a.Location),
		ShelfCount:  len(a.Shelves()),
	}
}

// ToShelfResponse mapea la entidad al contrato externo.
func ToShelfResponse(sh *entity.Shelf) *ShelfResponse {
	if sh == nil {
		return nil
	}
	return &ShelfResponse{
		ID:          sh.ID,
		Name:        sh.Name,
		Level:       string(sh.Level),
		Description: sh.Description,
		Temperature: string(sh.Temperature),
	}
}
