package dto

import "github.com/jhoicas/store-api/internal/domain/entity"

// CreateDeviceRequest entrada para aprovisionar un dispositivo.
type CreateDeviceRequest struct {
	DeviceID    string `json:"device_id" validate:"required"`
	Name        string `json:"name"`
	Type        string `json:"type" validate:"required"` // ej. CAMERA, ROBOT
	StoreID     string `json:"store_id" validate:"required"`
	AisleNumber string `json:"aisle_number" validate:"required"`
}

// DeviceEventRequest entrada para reportar un evento de dispositivo.
type DeviceEventRequest struct {
	Event string `json:"event" validate:"required"`
}

// DeviceCommandRequest entrada para emitir un comando a un appliance.
type DeviceCommandRequest struct {
	Command string `json:"command" validate:"required"`
}

// DeviceResponse salida de un dispositivo.
type DeviceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Kind        string `json:"kind"` // SENSOR | APPLIANCE
	StoreID     string `json:"store_id"`
	AisleNumber string `json:"aisle_number"`
}

// ToDeviceResponse mapea la entidad al contrato externo.
func ToDeviceResponse(d *entity.Device) *DeviceResponse {
	if d == nil {
		return nil
	}
	return &DeviceResponse{
		ID:          d.ID,
		Name:        d.Name,
		Type:        d.Type,
		Kind:        string(d.Kind),
		StoreID:     d.Location.StoreID,
		AisleNumber: d.Location.AisleNumber,
	}
}
