package entity

import "fmt"

// DeviceKind es la variante de un dispositivo, fijada en la creación.
type DeviceKind string

const (
	// DeviceKindSensor produce eventos (micrófonos, cámaras).
	DeviceKindSensor DeviceKind = "SENSOR"
	// DeviceKindAppliance acepta comandos además de producir eventos
	// (parlantes, robots, torniquetes).
	DeviceKindAppliance DeviceKind = "APPLIANCE"
)

// SensorType tipos de sensor reconocidos.
type SensorType string

const (
	SensorTypeMicrophone SensorType = "MICROPHONE"
	SensorTypeCamera     SensorType = "CAMERA"
)

// ApplianceType tipos de appliance reconocidos.
type ApplianceType string

const (
	ApplianceTypeSpeaker   ApplianceType = "SPEAKER"
	ApplianceTypeRobot     ApplianceType = "ROBOT"
	ApplianceTypeTurnstile ApplianceType = "TURNSTILE"
)

// ClassifyDeviceType resuelve la variante a partir del type-tag en un único
// punto. Precedencia determinista: si un tag apareciera en ambos conjuntos,
// gana Appliance. Un tag desconocido devuelve ok=false (el llamador decide
// el error, nunca se crea un dispositivo sin variante).
func ClassifyDeviceType(deviceType string) (DeviceKind, bool) {
	switch ApplianceType(deviceType) {
	case ApplianceTypeSpeaker, ApplianceTypeRobot, ApplianceTypeTurnstile:
		return DeviceKindAppliance, true
	}
	switch SensorType(deviceType) {
	case SensorTypeMicrophone, SensorTypeCamera:
		return DeviceKindSensor, true
	}
	return "", false
}

// Device es un dispositivo físico del Store. La variante (Kind) se fija al
// construirlo vía ClassifyDeviceType y no cambia.
type Device struct {
	ID       string
	Name     string
	Type     string // type-tag original (ej. "CAMERA", "ROBOT")
	Location StoreLocation
	Kind     DeviceKind
}

// NewDevice construye un dispositivo clasificando el type-tag.
func NewDevice(id, name, deviceType string, location StoreLocation) (*Device, error) {
	kind, ok := ClassifyDeviceType(deviceType)
	if !ok {
		return nil, fmt.Errorf("tipo de dispositivo desconocido: %q", deviceType)
	}
	return &Device{ID: id, Name: name, Type: deviceType, Location: location, Kind: kind}, nil
}

// ProcessEvent acepta un evento; cualquier variante puede producir eventos.
func (d *Device) ProcessEvent(event string) string {
	return fmt.Sprintf("device %s (%s) reported event: %s", d.ID, d.Type, event)
}

// ProcessCommand acepta un comando; solo la variante Appliance los procesa.
func (d *Device) ProcessCommand(command string) (string, error) {
	if d.Kind != DeviceKindAppliance {
		return "", fmt.Errorf("device %s is a %s and does not accept commands", d.ID, d.Kind)
	}
	return fmt.Sprintf("device %s (%s) executed command: %s", d.ID, d.Type, command), nil
}
