package store

import (
	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

// ProvisionDevice crea un dispositivo en un pasillo existente. La variante
// (Sensor o Appliance) se fija aquí vía la clasificación del type-tag; un tag
// no reconocido falla antes de mutar nada.
func (s *Service) ProvisionDevice(deviceID, name, deviceType, storeID, aisleNumber string) (*entity.Device, error) {
	const op = "Provision Device"
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stores[storeID]
	if !ok {
		return nil, domain.NotFound(op, "Store")
	}
	if st.GetAisle(aisleNumber) == nil {
		return nil, domain.NotFound(op, "Aisle")
	}
	if _, exists := s.devices[deviceID]; exists {
		return nil, domain.Conflict(op, "Device")
	}

	device, err := entity.NewDevice(deviceID, name, deviceType, entity.NewStoreLocation(storeID, aisleNumber))
	if err != nil {
		return nil, domain.Precondition(op, "Device Type Is Not Recognized")
	}
	s.devices[deviceID] = device
	st.AddDevice(device)

	if s.data != nil {
		if err := s.data.SaveDevice(deviceRecord(device)); err != nil {
			return nil, domain.Persistence(op, "Failed to save Device to database", err)
		}
	}
	copied := *device
	return &copied, nil
}

// ShowDevice devuelve un snapshot del dispositivo por id.
func (s *Service) ShowDevice(deviceID string) (*entity.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	device, ok := s.devices[deviceID]
	if !ok {
		return nil, domain.NotFound("Show Device", "Device")
	}
	copied := *device
	return &copied, nil
}

// RaiseEvent despacha un evento a cualquier variante de dispositivo.
func (s *Service) RaiseEvent(deviceID, event string) error {
	const op = "Raise Event"
	s.mu.Lock()
	defer s.mu.Unlock()

	device, ok := s.devices[deviceID]
	if !ok {
		return domain.NotFound(op, "Device")
	}
	s.log.Info().
		Str("device_id", device.ID).
		Str("device_type", device.Type).
		Str("event", event).
		Msg(device.ProcessEvent(event))
	return nil
}

// IssueCommand despacha un comando; solo la variante Appliance los acepta.
func (s *Service) IssueCommand(deviceID, command string) error {
	const op = "Issue Command"
	s.mu.Lock()
	defer s.mu.Unlock()

	device, ok := s.devices[deviceID]
	if !ok {
		return domain.NotFound(op, "Device")
	}
	msg, err := device.ProcessCommand(command)
	if err != nil {
		return domain.Precondition(op, "Device Is Not An Appliance")
	}
	s.log.Info().
		Str("device_id", device.ID).
		Str("device_type", device.Type).
		Str("command", command).
		Msg(msg)
	return nil
}

func deviceRecord(d *entity.Device) repository.DeviceRecord {
	return repository.DeviceRecord{
		ID:          d.ID,
		Name:        d.Name,
		Type:        d.Type,
		StoreID:     d.Location.StoreID,
		AisleNumber: d.Location.AisleNumber,
	}
}
