package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/application/store"
)

// DeviceHandler maneja las peticiones HTTP para Device.
type DeviceHandler struct {
	svc *store.Service
}

// NewDeviceHandler construye el handler.
func NewDeviceHandler(svc *store.Service) *DeviceHandler {
	return &DeviceHandler{svc: svc}
}

// Create aprovisiona un dispositivo en un pasillo.
func (h *DeviceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeviceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.DeviceID == "" || in.Type == "" || in.StoreID == "" || in.AisleNumber == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "device_id, type, store_id y aisle_number son requeridos"})
	}
	device, err := h.svc.ProvisionDevice(in.DeviceID, in.Name, in.Type, in.StoreID, in.AisleNumber)
	observeCommand("provision_device", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToDeviceResponse(device))
}

// GetByID devuelve un dispositivo.
func (h *DeviceHandler) GetByID(c *fiber.Ctx) error {
	device, err := h.svc.ShowDevice(c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToDeviceResponse(device))
}

// RaiseEvent reporta un evento de cualquier variante de dispositivo.
func (h *DeviceHandler) RaiseEvent(c *fiber.Ctx) error {
	var in dto.DeviceEventRequest
	if err := c.BodyParser(&in); err != nil || in.Event == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "event es requerido"})
	}
	err := h.svc.RaiseEvent(c.Params("id"), in.Event)
	observeCommand("raise_event", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// IssueCommand emite un comando; solo appliances lo aceptan.
func (h *DeviceHandler) IssueCommand(c *fiber.Ctx) error {
	var in dto.DeviceCommandRequest
	if err := c.BodyParser(&in); err != nil || in.Command == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "command es requerido"})
	}
	err := h.svc.IssueCommand(c.Params("id"), in.Command)
	observeCommand("issue_command", err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}
