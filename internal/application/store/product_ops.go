package store

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

// ProvisionProduct crea una entrada de catálogo.
func (s *Service) ProvisionProduct(productID, name, description, size, category string, price decimal.Decimal, temperature entity.Temperature) (*entity.Product, error) {
	const op = "Provision Product"
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[productID]; exists {
		return nil, domain.Conflict(op, "Product")
	}
	product := entity.NewProduct(productID, name, description, size, category, price, temperature)
	s.products[productID] = product

	if s.data != nil {
		if err := s.data.SaveProduct(productRecord(product)); err != nil {
			return nil, domain.Persistence(op, "Failed to save Product to database", err)
		}
	}
	copied := *product
	return &copied, nil
}

// ShowProduct devuelve un snapshot del producto por id.
func (s *Service) ShowProduct(productID string) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[productID]
	if !ok {
		return nil, domain.NotFound("Show Product", "Product")
	}
	copied := *product
	return &copied, nil
}

// ProvisionInventory crea un slot de inventario vinculando un Product a un
// Shelf. La única regla de negocio entre agregados del sistema se valida aquí
// antes de cualquier mutación: la clase de temperatura del producto debe
// coincidir con la del estante.
func (s *Service) ProvisionInventory(inventoryID, storeID, aisleNumber, shelfID string, capacity, count int, productID string, invType entity.InventoryType) (*entity.Inventory, error) {
	const op = "Provision Inventory"
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stores[storeID]
	if !ok {
		return nil, domain.NotFound(op, "Store")
	}
	aisle := st.GetAisle(aisleNumber)
	if aisle == nil {
		return nil, domain.NotFound(op, "Aisle")
	}
	shelf := aisle.GetShelf(shelfID)
	if shelf == nil {
		return nil, domain.NotFound(op, "Shelf")
	}
	product, ok := s.products[productID]
	if !ok {
		return nil, domain.NotFound(op, "Product")
	}
	if shelf.Temperature != product.Temperature {
		return nil, domain.Precondition(op, "Product and Shelf Temperature Is Not Consistent")
	}
	if _, exists := s.inventory[inventoryID]; exists {
		return nil, domain.Conflict(op, "Inventory")
	}

	location := entity.NewInventoryLocation(storeID, aisleNumber, shelfID)
	inv, err := entity.NewInventory(inventoryID, location, capacity, count, productID, invType)
	if err != nil {
		return nil, domain.Precondition(op, "Inventory Count Is Not Valid")
	}
	shelf.AddInventory(inv)
	s.inventory[inventoryID] = inv
	st.AddInventory(inv)

	if s.data != nil {
		if err := s.data.SaveInventory(inventoryRecord(inv)); err != nil {
			return nil, domain.Persistence(op, "Failed to save Inventory to database", err)
		}
	}
	copied := *inv
	return &copied, nil
}

// ShowInventory devuelve un snapshot del slot por id.
func (s *Service) ShowInventory(inventoryID string) (*entity.Inventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.inventory[inventoryID]
	if !ok {
		return nil, domain.NotFound("Show Inventory", "Inventory")
	}
	copied := *inv
	return &copied, nil
}

// UpdateInventory aplica un delta al conteo del slot (positivo o negativo).
// El conteo resultante nunca sale de [0, capacity]; una violación falla sin
// mutar y nada se persiste.
func (s *Service) UpdateInventory(inventoryID string, delta int) (*entity.Inventory, error) {
	const op = "Update Inventory"
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.inventory[inventoryID]
	if !ok {
		return nil, domain.NotFound(op, "Inventory")
	}
	if err := inv.Adjust(delta); err != nil {
		return nil, domain.Precondition(op, "Inventory Count Is Not Valid")
	}

	if s.data != nil {
		if err := s.data.SaveInventory(inventoryRecord(inv)); err != nil {
			return nil, domain.Persistence(op, "Failed to update Inventory in database", err)
		}
	}
	copied := *inv
	return &copied, nil
}

func productRecord(p *entity.Product) repository.ProductRecord {
	return repository.ProductRecord{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Size:        p.Size,
		Category:    p.Category,
		Price:       p.Price,
		Temperature: string(p.Temperature),
	}
}

func inventoryRecord(inv *entity.Inventory) repository.InventoryRecord {
	return repository.InventoryRecord{
		ID:          inv.ID,
		StoreID:     inv.Location.StoreID,
		AisleNumber: inv.Location.AisleNumber,
		ShelfID:     inv.Location.ShelfID,
		Capacity:    inv.Capacity,
		Count:       inv.Count,
		ProductID:   inv.ProductID,
		Type:        string(inv.Type),
	}
}
