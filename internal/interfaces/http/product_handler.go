package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/application/store"
	"github.com/jhoicas/store-api/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP para Product e Inventory.
type ProductHandler struct {
	svc *store.Service
}

// NewProductHandler construye el handler.
func NewProductHandler(svc *store.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Create aprovisiona un producto de catálogo.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y name son requeridos"})
	}
	temperature, err := entity.ParseTemperature(in.Temperature)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "temperature inválida"})
	}
	product, err := h.svc.ProvisionProduct(in.ProductID, in.Name, in.Description,
		in.Size, in.Category, in.Price, temperature)
	observeCommand("provision_product", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProductResponse(product))
}

// GetByID devuelve un producto.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.svc.ShowProduct(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToProductResponse(product))
}

// CreateInventory aprovisiona un slot de inventario sobre un estante.
func (h *ProductHandler) CreateInventory(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invType, err := entity.ParseInventoryType(in.Type)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser ON_FLOOR o IN_STOCKROOM"})
	}
	inv, err := h.svc.ProvisionInventory(in.InventoryID, in.StoreID, in.AisleNumber,
		in.ShelfID, in.Capacity, in.Count, in.ProductID, invType)
	observeCommand("provision_inventory", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToInventoryResponse(inv))
}

// GetInventory devuelve un slot de inventario.
func (h *ProductHandler) GetInventory(c *fiber.Ctx) error {
	inv, err := h.svc.ShowInventory(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToInventoryResponse(inv))
}

// UpdateInventory aplica un delta al conteo del slot.
func (h *ProductHandler) UpdateInventory(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := h.svc.UpdateInventory(c.Params("id"), in.Delta)
	observeCommand("update_inventory", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToInventoryResponse(inv))
}
