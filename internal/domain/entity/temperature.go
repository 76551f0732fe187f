package entity

import "fmt"

// Temperature clase de temperatura compartida por Product y Shelf.
// Es un conjunto cerrado: un Product solo puede colocarse en un Shelf de la
// misma clase (regla validada al aprovisionar Inventory).
type Temperature string

const (
	TemperatureFrozen       Temperature = "FROZEN"
	TemperatureRefrigerated Temperature = "REFRIGERATED"
	TemperatureAmbient      Temperature = "AMBIENT"
	TemperatureWarm         Temperature = "WARM"
	TemperatureHot          Temperature = "HOT"
)

// ParseTemperature valida y convierte el string a Temperature.
func ParseTemperature(s string) (Temperature, error) {
	switch Temperature(s) {
	case TemperatureFrozen, TemperatureRefrigerated, TemperatureAmbient, TemperatureWarm, TemperatureHot:
		return Temperature(s), nil
	default:
		return "", fmt.Errorf("temperatura inválida: %q", s)
	}
}
