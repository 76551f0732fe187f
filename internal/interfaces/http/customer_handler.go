package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/application/store"
	"github.com/jhoicas/store-api/internal/domain/entity"
)

// CustomerHandler maneja las peticiones HTTP para Customer y Basket.
type CustomerHandler struct {
	svc *store.Service
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(svc *store.Service) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// Create aprovisiona un cliente.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customerType, err := entity.ParseCustomerType(in.Type)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser REGISTERED o GUEST"})
	}
	customer, err := h.svc.ProvisionCustomer(in.CustomerID, in.FirstName, in.LastName,
		customerType, in.Email, in.Address)
	observeCommand("provision_customer", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCustomerResponse(customer))
}

// GetByID devuelve un cliente.
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.svc.ShowCustomer(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToCustomerResponse(customer))
}

// Update mueve/asigna el cliente a un store (semántica de transferencia).
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.StoreID == "" || in.AisleNumber == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id y aisle_number son requeridos"})
	}
	customer, err := h.svc.UpdateCustomer(c.Params("id"), in.StoreID, in.AisleNumber)
	observeCommand("update_customer", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToCustomerResponse(customer))
}

// GetBasket devuelve el basket asignado al cliente.
func (h *CustomerHandler) GetBasket(c *fiber.Ctx) error {
	basket, err := h.svc.GetCustomerBasket(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToBasketResponse(basket))
}

// AssignBasket asigna un basket existente al cliente.
func (h *CustomerHandler) AssignBasket(c *fiber.Ctx) error {
	basket, err := h.svc.AssignCustomerBasket(c.Params("id"), c.Params("basketId"))
	observeCommand("assign_customer_basket", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToBasketResponse(basket))
}

// CreateBasket aprovisiona un basket sin asignar.
func (h *CustomerHandler) CreateBasket(c *fiber.Ctx) error {
	var in struct {
		BasketID string `json:"basket_id"`
	}
	if err := c.BodyParser(&in); err != nil || in.BasketID == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "basket_id es requerido"})
	}
	basket, err := h.svc.ProvisionBasket(in.BasketID)
	observeCommand("provision_basket", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToBasketResponse(basket))
}

// ShowBasket devuelve un basket (asignado o no).
func (h *CustomerHandler) ShowBasket(c *fiber.Ctx) error {
	basket, err := h.svc.ShowBasket(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToBasketResponse(basket))
}

// AddBasketItem agrega unidades de un producto al basket.
func (h *CustomerHandler) AddBasketItem(c *fiber.Ctx) error {
	var in dto.BasketItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	basket, err := h.svc.AddBasketProduct(c.Params("id"), in.ProductID, in.Count)
	observeCommand("add_basket_product", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToBasketResponse(basket))
}

// RemoveBasketItem quita unidades de un producto del basket.
func (h *CustomerHandler) RemoveBasketItem(c *fiber.Ctx) error {
	var in dto.BasketItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	basket, err := h.svc.RemoveBasketProduct(c.Params("id"), in.ProductID, in.Count)
	observeCommand("remove_basket_product", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToBasketResponse(basket))
}

// ClearBasket vacía el basket.
func (h *CustomerHandler) ClearBasket(c *fiber.Ctx) error {
	basket, err := h.svc.ClearBasket(c.Params("id"))
	observeCommand("clear_basket", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToBasketResponse(basket))
}
