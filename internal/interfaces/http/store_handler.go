package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/auth"
	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/application/store"
	"github.com/jhoicas/store-api/internal/domain/entity"
)

// StoreHandler maneja las peticiones HTTP para Store, Aisle y Shelf.
// La autorización por método sigue la matriz RBAC de auth: ver = cualquier
// rol, crear/actualizar = ADMIN o MANAGER, borrar = solo ADMIN.
type StoreHandler struct {
	svc    *store.Service
	authUC *auth.AuthUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(svc *store.Service, authUC *auth.AuthUseCase) *StoreHandler {
	return &StoreHandler{svc: svc, authUC: authUC}
}

// List devuelve todos los stores.
func (h *StoreHandler) List(c *fiber.Ctx) error {
	if !h.authUC.CanViewStores(GetUser(c)) {
		return c.Status(fiber.StatusForbidden).
			JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin permiso para ver stores"})
	}
	stores := h.svc.GetAllStores()
	out := make([]*dto.StoreResponse, 0, len(stores))
	for _, st := range stores {
		out = append(out, dto.ToStoreResponse(st))
	}
	return c.JSON(out)
}

// Create aprovisiona un store.
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	if !h.authUC.CanCreateStore(GetUser(c)) {
		return c.Status(fiber.StatusForbidden).
			JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin permiso para crear stores"})
	}
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.StoreID == "" || in.Name == "" || in.Address == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id, name y address son requeridos"})
	}
	st, err := h.svc.ProvisionStore(in.StoreID, in.Name, in.Address)
	observeCommand("provision_store", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToStoreResponse(st))
}

// GetByID devuelve un store por id.
func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	storeID := c.Params("storeId")
	if !h.authUC.CanViewStore(GetUser(c), storeID) {
		return c.Status(fiber.StatusForbidden).
			JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin permiso para ver el store: " + storeID})
	}
	st, err := h.svc.ShowStore(storeID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToStoreResponse(st))
}

// Update actualiza descripción/dirección (los campos ausentes no tocan).
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	storeID := c.Params("storeId")
	if !h.authUC.CanUpdateStore(GetUser(c), storeID) {
		return c.Status(fiber.StatusForbidden).
			JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin permiso para actualizar el store: " + storeID})
	}
	var in dto.UpdateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	st, err := h.svc.UpdateStore(storeID, in.Description, in.Address)
	observeCommand("update_store", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToStoreResponse(st))
}

// Delete borra un store.
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	storeID := c.Params("storeId")
	if !h.authUC.CanDeleteStore(GetUser(c), storeID) {
		return c.Status(fiber.StatusForbidden).
			JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin permiso para borrar el store: " + storeID})
	}
	err := h.svc.DeleteStore(storeID)
	observeCommand("delete_store", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateAisle aprovisiona un pasillo dentro de un store.
func (h *StoreHandler) CreateAisle(c *fiber.Ctx) error {
	var in dto.CreateAisleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	location, err := entity.ParseAisleLocation(in.Location)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location debe ser FLOOR o STOCKROOM"})
	}
	aisle, err := h.svc.ProvisionAisle(c.Params("storeId"), in.Number, in.Name, in.Description, location)
	observeCommand("provision_aisle", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToAisleResponse(aisle))
}

// GetAisle devuelve un pasillo.
func (h *StoreHandler) GetAisle(c *fiber.Ctx) error {
	aisle, err := h.svc.ShowAisle(c.Params("storeId"), c.Params("aisleNumber"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToAisleResponse(aisle))
}

// CreateShelf aprovisiona un estante dentro de un pasillo.
func (h *StoreHandler) CreateShelf(c *fiber.Ctx) error {
	var in dto.CreateShelfRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	level, err := entity.ParseShelfLevel(in.Level)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "level debe ser HIGH, MEDIUM o LOW"})
	}
	temperature, err := entity.ParseTemperature(in.Temperature)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "temperature inválida"})
	}
	shelf, err := h.svc.ProvisionShelf(c.Params("storeId"), c.Params("aisleNumber"),
		in.ShelfID, in.Name, level, in.Description, temperature)
	observeCommand("provision_shelf", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToShelfResponse(shelf))
}

// GetShelf devuelve un estante.
func (h *StoreHandler) GetShelf(c *fiber.Ctx) error {
	shelf, err := h.svc.ShowShelf(c.Params("storeId"), c.Params("aisleNumber"), c.Params("shelfId"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToShelfResponse(shelf))
}
